package webui

import (
	"github.com/consolehq/console/core/assets"
	"github.com/consolehq/console/core/chat"
	"github.com/consolehq/console/core/sse"
)

type Config struct {
	Agents    *assets.Assets
	Materials *assets.Assets
	Chats     *chat.History
	Manager   sse.Manager
	StateDir  string
}

type Option func(*Config)

func WithAgents(a *assets.Assets) Option {
	return func(c *Config) {
		c.Agents = a
	}
}

func WithMaterials(m *assets.Assets) Option {
	return func(c *Config) {
		c.Materials = m
	}
}

func WithChats(h *chat.History) Option {
	return func(c *Config) {
		c.Chats = h
	}
}

func WithManager(m sse.Manager) Option {
	return func(c *Config) {
		c.Manager = m
	}
}

func WithStateDir(dir string) Option {
	return func(c *Config) {
		c.StateDir = dir
	}
}

func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func NewConfig(opts ...Option) *Config {
	c := &Config{}
	c.Apply(opts...)
	return c
}
