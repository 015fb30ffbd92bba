// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/auxgate/internal/meta"
	"github.com/tfctl/auxgate/internal/version"
)

// Flags shared by both services.
const (
	flagListen         = "listen"
	flagServiceVersion = "service-version"
	flagTimeout        = "timeout"
	flagMetrics        = "metrics"
	flagGzip           = "gzip"
)

// envSources builds a value chain from environment variable names, highest
// precedence first.
func envSources(envs ...string) cli.ValueSourceChain {
	var sources []cli.ValueSource
	for _, env := range envs {
		sources = append(sources, cli.EnvVar(env))
	}
	return cli.NewValueSourceChain(sources...)
}

// NameSpacedValueChainFromConfigFile appends the namespaced and then the
// global config file key for name to chain. Nothing is added when there is no
// config file.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, chain *cli.ValueSourceChain) {
	if path == "" {
		return
	}

	src := yaml.YAML(ns+"."+name, altsrc.StringSourcer(path))
	chain.Chain = append(chain.Chain, src)

	src = yaml.YAML(name, altsrc.StringSourcer(path))
	chain.Chain = append(chain.Chain, src)
}

// NewStringFlag constructs a string flag fed by envs and then the config file.
func NewStringFlag(m meta.Meta, name, usage, value string, envs ...string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    name,
		Usage:   usage,
		Value:   value,
		Sources: envSources(envs...),
	}
	NameSpacedValueChainFromConfigFile(m.Namespace, m.Config.Source, name, &flag.Sources)
	return flag
}

// NewBoolFlag constructs a bool flag fed by envs and then the config file.
func NewBoolFlag(m meta.Meta, name, usage string, envs ...string) *cli.BoolFlag {
	flag := &cli.BoolFlag{
		Name:    name,
		Usage:   usage,
		Sources: envSources(envs...),
	}
	NameSpacedValueChainFromConfigFile(m.Namespace, m.Config.Source, name, &flag.Sources)
	return flag
}

// NewDurationFlag constructs a positive duration flag fed by envs and then the
// config file.
func NewDurationFlag(m meta.Meta, name, usage string, value time.Duration, envs ...string) *cli.DurationFlag {
	flag := &cli.DurationFlag{
		Name:    name,
		Usage:   usage,
		Value:   value,
		Sources: envSources(envs...),
		Validator: func(d time.Duration) error {
			return FlagValidators(d, PositiveDurationValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(m.Namespace, m.Config.Source, name, &flag.Sources)
	return flag
}

// NewServerFlags returns the flags every service carries. prefix scopes the
// listen environment variable (AUX_LISTEN, API_LISTEN).
func NewServerFlags(m meta.Meta, prefix, listen string, timeout time.Duration) []cli.Flag {
	listenFlag := NewStringFlag(m, flagListen, "address to listen on", listen, prefix+"_LISTEN")
	listenFlag.Validator = func(value string) error {
		return FlagValidators(value, ListenValidator)
	}

	return []cli.Flag{
		listenFlag,
		NewStringFlag(m, flagServiceVersion, "version reported in responses", version.ServiceDefault, "SERVICE_VERSION"),
		NewDurationFlag(m, flagTimeout, "upper bound on each outbound call", timeout, prefix+"_TIMEOUT"),
		NewBoolFlag(m, flagMetrics, "expose Prometheus metrics on /metrics", "METRICS_ENABLED"),
		NewBoolFlag(m, flagGzip, "gzip responses for clients that accept it", "GZIP_ENABLED"),
	}
}
