// Command pantryclient-probe exercises a running backend through the full
// client stack: bootstrap, optional login, guarded navigation, and a few
// read endpoints. It prints every guard decision and a metrics dump, which
// makes it useful for smoke-testing a deployment.
//
// Examples:
//
//	pantryclient-probe -base-url http://localhost:8000/api -routes landing,news
//	pantryclient-probe -base-url http://localhost:8000/api \
//	  -username alice -password secret -routes dashboard,recipes,admin
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	pantryclient "github.com/pantrylabs/pantryclient"
	"github.com/pantrylabs/pantryclient/metrics/export/prometheus"
	"github.com/pantrylabs/pantryclient/session"
)

func main() {
	var (
		baseURL   = flag.String("base-url", "", "backend base URL, e.g. http://localhost:8000/api")
		username  = flag.String("username", "", "login username; empty probes anonymously")
		password  = flag.String("password", "", "login password")
		routeList = flag.String("routes", "landing,login,dashboard", "comma-separated route names to authorize")
		locale    = flag.String("locale", "", "UI locale override, e.g. de or en")
		entryURL  = flag.String("entry-url", "", "entry URL passed to bootstrap (dev-token overrides are honored)")
		timeout   = flag.Duration("timeout", 10*time.Second, "per-request timeout")
		dump      = flag.Bool("metrics", true, "print a Prometheus metrics dump at the end")
	)
	flag.Parse()

	if *baseURL == "" {
		fmt.Fprintln(os.Stderr, "-base-url is required")
		os.Exit(2)
	}

	client, err := pantryclient.New().
		WithBaseURL(*baseURL).
		WithTokenStore(session.NewMemoryStore()).
		WithNavigator(pantryclient.NewMemoryNavigator("landing")).
		WithLatencyHistograms(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	clean, err := client.Bootstrap(ctx, *entryURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap (degraded): %v\n", err)
	}
	if *entryURL != "" {
		fmt.Printf("entry URL: %s\n", clean)
	}

	if *locale != "" {
		if err := client.Locale().SetLocale(ctx, *locale); err != nil {
			fmt.Fprintf(os.Stderr, "set locale: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("locale: %s\n", client.Locale().Locale())

	if *username != "" {
		if err := client.Login(ctx, *username, *password); err != nil {
			fmt.Fprintf(os.Stderr, "login: %v\n", err)
			os.Exit(1)
		}
		if user, ok := client.Session().User(); ok {
			fmt.Printf("logged in as %s (admin=%v)\n", user.Username, user.IsAdmin)
		}
	}

	failed := false
	for _, route := range strings.Split(*routeList, ",") {
		route = strings.TrimSpace(route)
		if route == "" {
			continue
		}
		decision, err := client.Authorize(ctx, route)
		if err != nil {
			fmt.Printf("route %-16s error: %v\n", route, err)
			failed = true
			continue
		}
		fmt.Printf("route %-16s %s -> %s\n", route, decision.Action, decision.Target)
	}

	if client.Session().IsAuthenticated() {
		if news, err := client.API().News.List(ctx, 0, 3); err == nil {
			for _, article := range news {
				fmt.Printf("news: %s\n", article.Title)
			}
		}
	}

	if *dump {
		fmt.Println("---- metrics ----")
		fmt.Print(prometheus.NewPrometheusExporter(client).Render())
	}

	if failed {
		os.Exit(1)
	}
}
