package app

import "go.uber.org/zap"

// NewLogger returns a development logger when verbose is set, else a production one.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
