package cookiestore

// Options control the attributes written alongside cookie values.
type Options struct {
	Path   string
	Domain string
	Secure bool
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// applyOptions copies the base options and applies the provided option
// functions. The base options are not modified.
func applyOptions(base Options, opts []Option) Options {
	result := Options{
		Path:   base.Path,
		Domain: base.Domain,
		Secure: base.Secure,
	}

	for _, opt := range opts {
		opt(&result)
	}

	return result
}
