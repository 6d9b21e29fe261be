package domain

// Driver represents a registered driver.
//
// ChatID is the driver's current messaging session identity. It is zero until
// the first successful session binding; Phone is the stable key that
// recognizes a returning driver regardless of which session they connect
// from. FullName and Vehicle are supplied once at registration.
type Driver struct {
	ChatID   int64
	Phone    string
	FullName string
	Vehicle  string
}

// Bound reports whether the driver currently has a session identity.
func (d *Driver) Bound() bool {
	return d.ChatID != 0
}
