package connectivity

import "fmt"

// Connection indicates which shared thermal network one building is
// connected to: the atomic gene of a connectivity vector. A network id of
// 0 means the building is stand-alone.
type Connection struct {
	building  string
	networkID int
}

// NewConnection builds a validated Connection for a domain building.
func NewConnection(domain *Domain, networkID int, building string) (Connection, error) {
	if domain == nil {
		return Connection{}, fmt.Errorf("%w: a connection requires a domain", ErrInvalidValue)
	}
	if !domain.HasBuilding(building) {
		return Connection{}, fmt.Errorf("%w: building %q is not part of the domain",
			ErrInvalidValue, building)
	}
	c := Connection{building: building}
	if err := c.SetNetworkID(domain, networkID); err != nil {
		return Connection{}, err
	}
	return c, nil
}

// Building returns the building identifier the connection belongs to.
func (c Connection) Building() string {
	return c.building
}

// NetworkID returns the id of the network the building is connected to,
// 0 for a stand-alone building.
func (c Connection) NetworkID() int {
	return c.networkID
}

// SetNetworkID assigns a new network id after checking it against the
// domain's legal range. Buildings without thermal demand are pinned to 0
// on every assignment, whatever the requested value.
func (c *Connection) SetNetworkID(domain *Domain, networkID int) error {
	if networkID < 0 || networkID > domain.MaxNetworks() {
		return fmt.Errorf("%w: network id for building %q must be in [0, %d], got %d",
			ErrInvalidValue, c.building, domain.MaxNetworks(), networkID)
	}
	if domain.ZeroDemand(c.building) {
		c.networkID = 0
		return nil
	}
	c.networkID = networkID
	return nil
}
