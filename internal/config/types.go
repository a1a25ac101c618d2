package config

// Config is the engine configuration file.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

// EngineConfig holds the identification strings sent on "uci".
type EngineConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Author  string `toml:"author"`
}

// SearchConfig bounds the reference search backend.
type SearchConfig struct {
	MaxDepth          int `toml:"max_depth"`
	DefaultMoveTimeMS int `toml:"default_movetime_ms"` // 0 means depth-limited only
}

// LogConfig selects the log sink.
type LogConfig struct {
	File  string `toml:"file"` // empty disables logging
	Level string `toml:"level"`
}

// CPUFeatures describes the host processor, logged once at startup.
type CPUFeatures struct {
	Brand  string
	Cores  int
	AVX512 bool
	AVX2   bool
	BMI2   bool
	POPCNT bool
	SSE42  bool
}
