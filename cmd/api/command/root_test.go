package command

import (
	"testing"

	"HealthCompanion/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommands(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	// serve's flags are accepted by the bare root command too
	assert.NotNil(t, rootCmd.Flags().Lookup("migrate"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

func TestSetupLoggerLevel(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	setupLogger(&config.Config{AppEnv: "production", LogLevel: "warn"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogger(&config.Config{AppEnv: "production", LogLevel: "bogus"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
