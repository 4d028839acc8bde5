package typeflow

// Consumer receives a batch of Types newly learned by the Node it was
// registered on. A consumer registered before a type is added sees
// that type exactly once, in the batch it arrived in; one registered
// after is caught up with every type the node already holds.
type Consumer interface {
	Deliver(delta []Type)
}

// ConsumerFunc adapts a plain function to the Consumer interface, the
// same way http.HandlerFunc adapts a function to http.Handler.
type ConsumerFunc func(delta []Type)

// Deliver calls f.
func (f ConsumerFunc) Deliver(delta []Type) { f(delta) }
