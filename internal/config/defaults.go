package config

// Default returns the built-in configuration used when no config file is
// found. Colors are standard ANSI codes so they respect terminal palettes.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Snake:  "2",   // green
			Food:   "1",   // red
			Text:   "7",   // white
			Accent: "3",   // yellow
			Dim:    "245", // gray
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKey:            "", // auto-generated under ~/.termsnake
			IdleTimeoutMinutes: 30,
		},
	}
}
