package sandbox

import (
	"github.com/docker/docker/api/types/container"
)

// SecurityOptions is the pure, engine-agnostic result of mapping a sandbox
// Config to container host-level security fields. It is a plain struct of
// independent booleans, so the type itself does not stop a caller from
// setting Privileged together with the other fields. FromConfig never
// produces such a combination, and BuildHostConfig ignores every other
// field when Privileged is true.
type SecurityOptions struct {
	Privileged bool

	// The following are populated only when Privileged is false.
	MountDevFuse    bool
	AddSysAdminCap  bool
	DisableSELinux  bool
}

// FromConfig translates a sandbox Config into SecurityOptions per the
// truth table in the mapper's doc comment on BuildHostConfig. Privileged
// mode intentionally ignores FUSE and SELinux settings because the engine
// host profile already governs them there.
func FromConfig(cfg Config) SecurityOptions {
	if cfg.Privileged {
		return SecurityOptions{Privileged: true}
	}

	opts := SecurityOptions{}
	if cfg.MountDevFuse {
		opts.MountDevFuse = true
		opts.AddSysAdminCap = true
	}
	if cfg.SELinuxLabelMode == SELinuxDisableForContainer {
		opts.DisableSELinux = true
	}
	return opts
}

// BuildHostConfig builds the container HostConfig fields to apply at
// create time, from SecurityOptions:
//
//	privileged=true                                 -> {Privileged: true} only
//	privileged=false, fuse=true,  selinux=disable    -> devices=[/dev/fuse rwm], cap_add=[SYS_ADMIN], security_opt=[label=disable]
//	privileged=false, fuse=true,  selinux=keep       -> devices=[/dev/fuse rwm], cap_add=[SYS_ADMIN]
//	privileged=false, fuse=false, selinux=disable    -> security_opt=[label=disable]
//	privileged=false, fuse=false, selinux=keep       -> zero value
func BuildHostConfig(opts SecurityOptions) container.HostConfig {
	if opts.Privileged {
		return container.HostConfig{Privileged: true}
	}

	var hc container.HostConfig

	if opts.MountDevFuse {
		hc.Resources.Devices = []container.DeviceMapping{
			{
				PathOnHost:        "/dev/fuse",
				PathInContainer:   "/dev/fuse",
				CgroupPermissions: "rwm",
			},
		}
	}
	if opts.AddSysAdminCap {
		hc.CapAdd = []string{"SYS_ADMIN"}
	}
	if opts.DisableSELinux {
		hc.SecurityOpt = []string{"label=disable"}
	}

	return hc
}
