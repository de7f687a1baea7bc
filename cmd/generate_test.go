package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/Lumos-Labs-HQ/airgen/internal/config"
	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/Lumos-Labs-HQ/airgen/internal/schema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPost struct {
	path    string
	records []map[string]any
}

type captureAPI struct {
	mu    sync.Mutex
	posts []capturedPost
}

func newCaptureAPI(t *testing.T) (*captureAPI, *httptest.Server) {
	api := &captureAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var records []map[string]any
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &records); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		api.mu.Lock()
		api.posts = append(api.posts, capturedPost{path: r.URL.Path, records: records})
		api.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

type generateArgs struct {
	entity   string
	amount   int
	dryRun   bool
	set      []string
	validate bool
}

// runGenerateWith runs the generate command against baseURL and returns
// what it wrote to its output.
func runGenerateWith(t *testing.T, baseURL string, args generateArgs) (string, error) {
	t.Helper()

	viper.Reset()
	config.SetDefaults(viper.GetViper())
	viper.Set("base_url", baseURL)
	t.Cleanup(viper.Reset)

	logrus.SetOutput(io.Discard)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	genEntity = args.entity
	genAmount = args.amount
	genDryRun = args.dryRun
	genSet = args.set
	genValidate = args.validate
	genFormat = "json"
	genSeed = 7

	var out bytes.Buffer
	c := &cobra.Command{Use: "generate"}
	c.SetOut(&out)
	c.SetContext(context.Background())

	err := runGenerate(c, nil)
	return out.String(), err
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		args    generateArgs
		wantErr error
	}{
		{
			name:    "unknown entity",
			args:    generateArgs{entity: "rocket", amount: 1, dryRun: true},
			wantErr: entity.ErrUnknownEntityKind,
		},
		{
			name:    "request has no generator",
			args:    generateArgs{entity: "request", amount: 0, dryRun: true},
			wantErr: entity.ErrUnsupportedEntityKind,
		},
		{
			name:    "bank has no endpoint",
			args:    generateArgs{entity: "bank", amount: 1},
			wantErr: entity.ErrUnsupportedEntityKind,
		},
		{
			name: "negative amount",
			args: generateArgs{entity: "user", amount: -1},
		},
		{
			name: "malformed override",
			args: generateArgs{entity: "user", amount: 1, set: []string{"email"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, srv := newCaptureAPI(t)

			out, err := runGenerateWith(t, srv.URL, tt.args)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.Empty(t, out)
			assert.Empty(t, api.posts, "nothing may be sent")
		})
	}
}

func TestGenerateLiveSendsOneBatch(t *testing.T) {
	api, srv := newCaptureAPI(t)

	_, err := runGenerateWith(t, srv.URL, generateArgs{
		entity: "user",
		amount: 2,
		set:    []string{"email=ops@example.com"},
	})
	require.NoError(t, err)

	require.Len(t, api.posts, 1)
	assert.Equal(t, "/users", api.posts[0].path)
	require.Len(t, api.posts[0].records, 2)
	for _, rec := range api.posts[0].records {
		assert.Equal(t, "ops@example.com", rec["email"])
	}
}

func TestGenerateDryRunPrintsBatch(t *testing.T) {
	api, srv := newCaptureAPI(t)

	out, err := runGenerateWith(t, srv.URL, generateArgs{
		entity: "passenger",
		amount: 2,
		dryRun: true,
		set:    []string{"seat=4", "flight_number=TK100"},
	})
	require.NoError(t, err)
	assert.Empty(t, api.posts)

	var doc struct {
		Kind     string           `json:"kind"`
		Endpoint string           `json:"endpoint"`
		Count    int              `json:"count"`
		Records  []map[string]any `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "passenger", doc.Kind)
	assert.Equal(t, "/passengers", doc.Endpoint)
	assert.Equal(t, 2, doc.Count)
	require.Len(t, doc.Records, 2)
	for _, rec := range doc.Records {
		assert.Equal(t, float64(4), rec["seat"])
		assert.Equal(t, "TK100", rec["flight_number"])
	}
}

func TestGenerateValidateRefusesBadOverride(t *testing.T) {
	api, srv := newCaptureAPI(t)

	out, err := runGenerateWith(t, srv.URL, generateArgs{
		entity:   "plane",
		amount:   1,
		set:      []string{`capacity="big"`},
		validate: true,
	})
	var invalid *schema.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, entity.Plane, invalid.Kind)
	assert.Empty(t, out)
	assert.Empty(t, api.posts)
}

func TestSeedFlagsDocumentZero(t *testing.T) {
	for _, c := range []*cobra.Command{generateCmd, schemeCmd} {
		usage := c.Flags().Lookup("seed").Usage
		assert.Contains(t, usage, "0 means", c.Name())
	}
}
