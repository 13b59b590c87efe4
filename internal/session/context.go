package session

// DefaultUserName is shown when no --username is given.
const DefaultUserName = "Unknown"

// Context is the state shared across the commands of one session: the
// display name, fixed at startup, and the current location, changed only
// by navigation handlers.
type Context struct {
	userName string
	location string
}

// NewContext creates a Context. An empty userName becomes DefaultUserName.
func NewContext(userName, location string) *Context {
	if userName == "" {
		userName = DefaultUserName
	}
	return &Context{userName: userName, location: location}
}

func (c *Context) UserName() string { return c.userName }

func (c *Context) Location() string { return c.location }

func (c *Context) SetLocation(path string) { c.location = path }
