package ports

import "context"

// OptionStore is a small named key-value store for application settings.
type OptionStore interface {
	// GetOption returns the stored value and whether the option exists.
	GetOption(ctx context.Context, name string) (string, bool, error)
	SetOption(ctx context.Context, name, value string) error
	// AddOption writes value only when name is not yet stored and reports
	// whether it did.
	AddOption(ctx context.Context, name, value string) (bool, error)
}
