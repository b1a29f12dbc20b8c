package userconfig

// Config describes the configuration structure we support.
type Config struct {
	// Output format of the parse, validate, next and check commands.
	// "json" prints one JSON document per command for use in scripts.
	OutputFormat string `koanf:"output.format" oneof:"text,json" default:"text"`

	// Number of activation times printed by `schedexpr next`
	// when the -n flag is not given.
	NextCount int `koanf:"next.count" default:"5"`

	// Timezone activation times are computed in, as an IANA name
	// such as "Europe/Stockholm". Jobs that name their own timezone ignore it.
	Timezone string `koanf:"timezone" default:"UTC"`
}
