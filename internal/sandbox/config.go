// Package sandbox models the sandbox security configuration and its pure
// mapping to container host-level security fields.
package sandbox

// SELinuxLabelMode selects whether SELinux container labelling is left at
// its engine default or explicitly disabled for the container.
type SELinuxLabelMode string

const (
	// SELinuxKeepDefault leaves SELinux labelling at the engine default.
	SELinuxKeepDefault SELinuxLabelMode = "keep_default"
	// SELinuxDisableForContainer disables SELinux labelling for the container.
	SELinuxDisableForContainer SELinuxLabelMode = "disable_for_container"
)

// Config is the user-facing sandbox security configuration. Any
// combination of fields is valid; Security Mapper resolves precedence.
type Config struct {
	Privileged       bool             `mapstructure:"privileged"`
	MountDevFuse     bool             `mapstructure:"mount_dev_fuse"`
	SELinuxLabelMode SELinuxLabelMode `mapstructure:"selinux_label_mode"`
}

// Default returns the spec-mandated defaults: not privileged, FUSE mounted,
// SELinux labelling disabled for the container.
func Default() Config {
	return Config{
		Privileged:       false,
		MountDevFuse:     true,
		SELinuxLabelMode: SELinuxDisableForContainer,
	}
}
