// Package gpro scrapes the race analysis report of the GPRO
// racing-management site into typed records.
package gpro

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"gproassist/lib/restyutil"
	"gproassist/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	// one record per coordinate, overwritten on re-fetch. Not safe for
	// concurrent use; fetches are sequential by design.
	cache map[Coordinate]*RaceAnalysis
}

type ClientOptions struct {
	BaseUrl string
	// when set, every request/response pair is dumped into this
	// directory for offline inspection
	DebugDir string
}

const defaultBaseUrl = "https://gpro.net/gb"

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	// the login redirect is the success witness, so redirects are
	// surfaced instead of followed
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "gproassist.scrapers.gpro.http")

	if opts.DebugDir != "" {
		output, err := restyutil.NewFilesystemOutput(opts.DebugDir)
		if err != nil {
			return nil, err
		}
		restyutil.DumpTraffic(client, output)
	}

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
		cache:   map[Coordinate]*RaceAnalysis{},
	}, nil
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	_, err := c.Http.R().
		SetContext(ctx).
		Get("/Login.asp")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch login page")
		return err
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"textLogin":    username,
			"textPassword": password,
			"token":        "",
			"Logon":        "Login",
			"LogonFake":    "Sign in",
		}).
		Post("/Login.asp")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return err
	}

	if res.StatusCode() != http.StatusFound {
		span.SetStatus(codes.Error, ErrAuthentication.Error())
		return ErrAuthentication
	}
	return nil
}
