package podium

import (
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/lookup"
	"github.com/agentstation/podium/pkg/names"
	"github.com/agentstation/podium/pkg/reconcile"
)

// Option is a function that configures a Pipeline
type Option func(*config) error

// WithLegacyDir sets the directory holding the multi-edition tables
func WithLegacyDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("legacy_dir", dir, "cannot be empty")
		}
		c.legacyDir = dir
		return nil
	}
}

// WithNewDir sets the directory holding the single-edition tables
func WithNewDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("new_dir", dir, "cannot be empty")
		}
		c.newDir = dir
		return nil
	}
}

// WithEventNames sets the event-name translation table
func WithEventNames(events lookup.EventNames) Option {
	return func(c *config) error {
		c.events = events
		return nil
	}
}

// WithEventMapFile loads the event-name translation table from a YAML or
// CSV file
func WithEventMapFile(path string) Option {
	return func(c *config) error {
		table, err := lookup.LoadFile(path)
		if err != nil {
			return errors.NewConfigError("event_map", "loading "+path, err)
		}
		c.events = table
		return nil
	}
}

// WithCharMapFile replaces the built-in character table used to fold
// legacy athlete names
func WithCharMapFile(path string) Option {
	return func(c *config) error {
		folder, err := names.LoadCharMap(path)
		if err != nil {
			return errors.NewConfigError("char_map", "loading "+path, err)
		}
		c.folder = folder
		return nil
	}
}

// WithPolicy sets the matching and synthesis switches
func WithPolicy(p reconcile.Policy) Option {
	return func(c *config) error {
		c.policy = p
		return nil
	}
}

// WithNewEditionID sets the edition new result rows are attached to
func WithNewEditionID(id string) Option {
	return func(c *config) error {
		c.editionID = id
		return nil
	}
}
