//
// newsdesk
// ========
// A news publishing backend: markdown articles, anonymous visitor
// tracking, per-article analytics, AI writing help and narrated slideshow
// videos.
//
// Boot the server:
// ----------------
// $ NEWSDESK_DATABASE_URL=postgres://localhost/newsdesk go run . migrate
// $ NEWSDESK_DATABASE_URL=postgres://localhost/newsdesk go run . serve
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/ping
// pong
//
// $ curl http://localhost:3333/api/articles?category=Tecnologia
// [{"id":"…","title":"Inteligência Artificial revoluciona o diagnóstico médico", …}]
//
// $ curl -X POST -d '{"articleId":"…","userId":"…","sectionTitle":"Intro","sectionLevel":"H2"}' \
//     http://localhost:3333/api/section-tracking
// {"success":true,"action":"inserted"}
//
// Passing `routes` prints the generated route docs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
