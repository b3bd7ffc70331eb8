package main

import (
	"github.com/spf13/cobra"

	"kwclass/internal/dialect"
	"kwclass/internal/keywords"
	"kwclass/internal/trace"
)

// env is what every classifying command needs: the configuration, the
// registry built from it and a session for the chosen dialects.
type env struct {
	cfg    *config
	reg    *keywords.Registry
	sess   *keywords.Session
	tracer trace.Tracer
}

// loadEnv resolves configuration and builds a session. langFlag is the
// command's --lang value; def applies when neither it nor the config names
// a dialect.
func loadEnv(cmd *cobra.Command, langFlag string, def dialect.Mask) (*env, error) {
	tracer := trace.FromContext(cmd.Context())
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	snapshots, extra, err := keywordFlags(cmd)
	if err != nil {
		return nil, err
	}
	reg, err := buildRegistry(cfg, snapshots, extra, tracer)
	if err != nil {
		return nil, err
	}
	mask, err := languages(langFlag, cfg, def)
	if err != nil {
		return nil, err
	}
	sess, err := keywords.NewSession(mask, keywords.WithTracer(tracer), keywords.WithRegistry(reg))
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, reg: reg, sess: sess, tracer: tracer}, nil
}
