package domain

// ConfigOverrides carries values set on the command line. Nil fields leave the file value untouched.
type ConfigOverrides struct {
	ConfigPath   string
	Kubeconfig   *string
	PatchRoot    *string
	FieldManager *string
	DryRun       *bool
	Verbose      bool
}

func (o ConfigOverrides) apply(config *Config) {
	if o.Kubeconfig != nil && *o.Kubeconfig != "" {
		config.Kubeconfig = *o.Kubeconfig
	}
	if o.PatchRoot != nil && *o.PatchRoot != "" {
		config.PatchRoot = *o.PatchRoot
	}
	if o.FieldManager != nil && *o.FieldManager != "" {
		config.FieldManager = *o.FieldManager
	}
	if o.DryRun != nil {
		config.DryRun = *o.DryRun
	}
}

// Merge returns the config with the overrides applied and defaults filled in.
func (o ConfigOverrides) Merge(config Config) Config {
	o.apply(&config)
	config.ApplyDefaults()
	return config
}
