package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yooung1/sonntag/core"
)

const indexHTML = `
<html><body>
	<h1>Guía de actividades</h1>
	<nav id="materialNav"><nav><ul>
		<li><a class="cardContainer" href="/semana/1">1-7 DE ENERO</a></li>
		<li><a class="cardContainer" href="/semana/2">8-14 DE ENERO</a></li>
	</ul></nav></nav>
</body></html>`

const weekHTML = `
<html><body>
	<h1>1-7 de enero</h1>
	<h2>juan 5</h2>
	<h2>Canción 3 y oración</h2>
	<h3>TESOROS DE LA BIBLIA</h3>
</body></html>`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(indexHTML))
	})
	mux.HandleFunc("/semana/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(weekHTML))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_FindLinksResolvesHrefs(t *testing.T) {
	srv := testServer(t)
	src := New()
	defer src.Close()

	require.NoError(t, src.Navigate(context.Background(), srv.URL))

	links, err := src.FindLinks("#materialNav nav ul li a.cardContainer")
	require.NoError(t, err)

	require.Len(t, links, 2)
	assert.Equal(t, "1-7 DE ENERO", links[0].Text)
	assert.Equal(t, srv.URL+"/semana/1", links[0].URL)
	assert.Equal(t, srv.URL+"/semana/2", links[1].URL)
}

func TestHTTPSource_ExtractHeadingsInDocumentOrder(t *testing.T) {
	srv := testServer(t)
	src := New()
	defer src.Close()

	require.NoError(t, src.Navigate(context.Background(), srv.URL+"/semana/1"))

	headings, err := src.ExtractHeadings()
	require.NoError(t, err)

	assert.Equal(t, core.HeadingSequence{
		"1-7 de enero",
		"juan 5",
		"Canción 3 y oración",
		"TESOROS DE LA BIBLIA",
	}, headings)
}

func TestHTTPSource_ClickNthFollowsLink(t *testing.T) {
	srv := testServer(t)
	src := New()
	defer src.Close()

	ctx := context.Background()
	require.NoError(t, src.Navigate(ctx, srv.URL))
	require.NoError(t, src.ClickNth(ctx, "a.cardContainer", 0))

	headings, err := src.ExtractHeadings()
	require.NoError(t, err)
	require.NotEmpty(t, headings)
	assert.Equal(t, "1-7 de enero", headings[0])
}

func TestHTTPSource_WaitForReady(t *testing.T) {
	srv := testServer(t)
	src := New(WithPolling(time.Millisecond, 2))
	defer src.Close()

	ctx := context.Background()
	require.NoError(t, src.Navigate(ctx, srv.URL))

	assert.NoError(t, src.WaitForReady(ctx, "#materialNav"))

	err := src.WaitForReady(ctx, "#noSuchThing")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTimeout)
}

func TestHTTPSource_NavigateErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := New()
	defer src.Close()

	err := src.Navigate(context.Background(), srv.URL+"/missing")
	assert.Error(t, err)
}

func TestHTTPSource_CloseIsIdempotent(t *testing.T) {
	src := New()

	assert.NoError(t, src.Close())
	assert.NoError(t, src.Close())
	assert.Error(t, src.Navigate(context.Background(), "http://localhost/after-close"))
}
