package fpl

import "time"

const (
	providerName       = "fpl"
	defaultBaseURL     = "https://fantasy.premierleague.com/api"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
