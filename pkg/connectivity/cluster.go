package connectivity

import "sort"

// ConnectionPoint is the location at which a building would connect to a
// thermal network. It is the input of the external spatial clustering
// collaborator.
type ConnectionPoint struct {
	Building string
	X, Y     float64
}

// Clusterer groups network connection points into spatial clusters. The
// returned index holds one cluster id per genome position; negative ids
// mark outliers. The generation-loop driver computes the index once per
// run and threads it into every cluster-aware operator call.
type Clusterer interface {
	Cluster(points []ConnectionPoint) (ClusterIndex, error)
}

// ClusterIndex maps genome position to spatial cluster id. Ids are
// non-negative; a negative value marks the position as an outlier, which
// cluster-aware operators always treat individually.
type ClusterIndex []int

// Clusters returns the distinct non-outlier cluster ids in ascending order.
func (ci ClusterIndex) Clusters() []int {
	seen := make(map[int]bool)
	var clusters []int
	for _, id := range ci {
		if id >= 0 && !seen[id] {
			seen[id] = true
			clusters = append(clusters, id)
		}
	}
	sort.Ints(clusters)
	return clusters
}

// Members returns the genome positions belonging to a cluster, in genome
// order.
func (ci ClusterIndex) Members(cluster int) []int {
	var members []int
	for i, id := range ci {
		if id == cluster {
			members = append(members, i)
		}
	}
	return members
}

// Outliers returns the genome positions not assigned to any cluster, in
// genome order.
func (ci ClusterIndex) Outliers() []int {
	var outliers []int
	for i, id := range ci {
		if id < 0 {
			outliers = append(outliers, i)
		}
	}
	return outliers
}
