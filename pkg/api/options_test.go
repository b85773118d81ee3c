package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/hopper/pkg/structs"
)

func TestDefaultOptions(t *testing.T) {
	cases := []struct {
		Name  string
		Given *structs.Options
	}{
		{Name: "Client", Given: OptionsClientDefault()},
		{Name: "Server", Given: OptionsServerDefault()},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			// polling stays polite: at least a second apart, never stale
			assert.GreaterOrEqual(t, c.Given.PollInterval, time.Second)
			assert.LessOrEqual(t, c.Given.PollInterval, 5*time.Second)
			assert.GreaterOrEqual(t, c.Given.MaxPollInterval, c.Given.PollInterval)

			// remote queues can sit for a long while before dispatch
			assert.GreaterOrEqual(t, c.Given.MaxElapsed, 10*time.Minute)

			assert.Greater(t, c.Given.MaxQueryRetries, int64(0))
			assert.Equal(t, int64(4), c.Given.SeverityThreshold)

			// every outcome has somewhere to read diagnostics from
			for _, o := range []structs.Outcome{
				structs.COMPILE_ERROR, structs.LINK_ERROR, structs.RUN_ABEND,
				structs.RUN_SUCCESS, structs.JCL_ERROR, structs.SYSTEM_ERROR,
			} {
				assert.NotNil(t, c.Given.Selectors[o])
			}
		})
	}
}
