// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package stratum

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func configServer(docs map[string]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(doc))
	}))
}

func TestHTTPLoader(t *testing.T) {
	t.Run("fetches a document by url", func(t *testing.T) {
		srv := configServer(map[string]string{
			"/base.yaml": "a: 1\n",
		})
		defer srv.Close()

		loader := NewHTTPLoader(HTTPClient(srv.Client()), MaxRetries(0))

		b, err := loader.ReadConfiguration(srv.URL + "/base.yaml")
		require.NoError(t, err)
		require.Equal(t, []byte("a: 1\n"), b)
	})

	t.Run("fails for a missing document", func(t *testing.T) {
		srv := configServer(nil)
		defer srv.Close()

		loader := NewHTTPLoader(HTTPClient(srv.Client()), MaxRetries(0))

		_, err := loader.ReadConfiguration(srv.URL + "/missing.yaml")

		var statusErr UnexpectedStatusCodeError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("missing documents are skipped by the fold", func(t *testing.T) {
		srv := configServer(map[string]string{
			"/base.yaml":     "a: 1\nb: 2\n",
			"/override.yaml": "b: 3\n",
		})
		defer srv.Close()

		m := New(NewHTTPLoader(HTTPClient(srv.Client()), MaxRetries(0)))

		tree := m.Merge(srv.URL+"/base.yaml", srv.URL+"/missing.yaml", srv.URL+"/override.yaml")

		b, err := yaml.Marshal(tree)
		require.NoError(t, err)
		require.Equal(t, "a: 1\nb: 3\n", string(b))
	})
}
