package config

const (
	defaultConfigPath    = "~/.config/rtpkit/config.toml"
	projectConfigName    = "rtpkit.toml"
	defaultDataDir       = "~/.local/share/rtpkit"
	defaultLogDir        = "~/.local/share/rtpkit/logs"
	defaultStoreFile     = "plans.db"
	defaultEncoding      = EncodingUTF8
	defaultMaxLineBytes  = 1 << 20
	minMaxLineBytes      = 4 << 10
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRetentionDays = 30

	// LogLevelEnv overrides logging.level when set.
	LogLevelEnv = "RTPKIT_LOG_LEVEL"
)

// Supported values for decode.encoding.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Decode: Decode{
			Encoding:     defaultEncoding,
			MaxLineBytes: defaultMaxLineBytes,
		},
		Store: Store{
			Enabled: true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultRetentionDays,
		},
	}
}
