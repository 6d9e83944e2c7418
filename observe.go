package gridview

// observer is a registered state-change callback.
type observer struct {
	id int
	fn func(State)
}

// Observe registers fn to be called with a snapshot of the state after every
// change made by UpdateTranslation, UpdateScale or SetViewportSize. Ignored
// inputs do not trigger a call. Callbacks run synchronously on the calling
// goroutine, in registration order.
//
// The returned function removes the registration. Calling it more than once
// is harmless.
func (e *Engine) Observe(fn func(State)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	e.nextObsID++
	id := e.nextObsID
	e.observers = append(e.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range e.observers {
			if o.id == id {
				e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify() {
	if len(e.observers) == 0 {
		return
	}
	s := e.State()
	for _, o := range e.observers {
		o.fn(s)
	}
}
