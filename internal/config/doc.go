// Package config loads mask profiles for inputmask.
//
// A profile names a primary format, its alternatives and how a field using
// them behaves. Profiles share custom notations and defaults:
//
//	log_level = "info"
//
//	[defaults]
//	autocomplete = true
//	affinity = "whole_string"
//	presentation = "plain"
//
//	[[notations]]
//	character = "H"
//	set = "0123456789ABCDEF"
//
//	[profiles.phone]
//	primary = "+7 ([000]) [000]-[00]-[00]"
//	affine = ["8 ([000]) [000]-[00]-[00]"]
//	affinity = "prefix"
//
// # Layers
//
// Settings are resolved from lowest to highest priority:
//
//   - built-in defaults
//   - files pulled in through "include", in order
//   - the configuration file itself (TOML or YAML)
//   - INPUTMASK_ environment variables
//
// # Usage
//
//	cfg, err := config.Load("masks.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(cache); err != nil {
//	    return err
//	}
//	f, err := cfg.Field("phone", cache, logger)
package config
