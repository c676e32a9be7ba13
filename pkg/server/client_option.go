package server

type ClientOption interface {
	apply(*GraphClient)
}

// WithNodeName sets the node name sent with count queries.
func WithNodeName(name string) ClientOption {
	return clientOptionFunc(func(c *GraphClient) {
		c.nodeName = name
	})
}

// WithImplementationID overrides the implementation identifier sent with
// count queries. Mostly useful for testing handle validation.
func WithImplementationID(id string) ClientOption {
	return clientOptionFunc(func(c *GraphClient) {
		c.implementationID = id
	})
}

type clientOptionFunc func(*GraphClient)

func (f clientOptionFunc) apply(c *GraphClient) {
	f(c)
}
