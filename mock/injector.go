package mock

import "github.com/jilee1212/sitegen"

var _ sitegen.Injector = (*Injector)(nil)

// Injector is a mock implementation of sitegen.Injector.
type Injector struct {
	InjectFn func(template string, bundle *sitegen.ContentBundle) (*sitegen.InjectResult, error)
}

func (i *Injector) Inject(template string, bundle *sitegen.ContentBundle) (*sitegen.InjectResult, error) {
	return i.InjectFn(template, bundle)
}
