package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/kurochkinivan/dre_robot/internal/config"
	"github.com/kurochkinivan/dre_robot/internal/domain"
)

type Fetcher struct {
	log    *slog.Logger
	cfg    config.Export
	client *http.Client
}

type FetcherOption func(*Fetcher)

// WithTransport replaces the transport built from the export config.
func WithTransport(rt http.RoundTripper) FetcherOption {
	return func(f *Fetcher) {
		f.client.Transport = rt
	}
}

func NewFetcher(log *slog.Logger, cfg config.Export, opts ...FetcherOption) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // vendor certificate chain is incomplete
	}

	f := &Fetcher{
		log: log,
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// ExportQuery returns the filters of the project panel export.
func ExportQuery(cfg config.Export) url.Values {
	return url.Values{
		"clienteFiltro":              {""},
		"servicoFiltro":              {"-1"},
		"tipoFiltro":                 {"-1"},
		"projetoFiltro":              {""},
		"projetoAtivoFiltro":         {"true"},
		"projetoParalisadoFiltro":    {"true"},
		"projetoEncerradoFiltro":     {"true"},
		"projetoCanceladoFiltro":     {"true"},
		"responsavelareaFiltro":      {""},
		"idResponsavelareaFiltro":    {""},
		"responsavelprojetoFiltro":   {cfg.ResponsibleName},
		"idresponsavelprojetoFiltro": {cfg.ResponsibleID},
		"filtroDeFiltro":             {cfg.PeriodFrom},
		"filtroAteFiltro":            {cfg.PeriodTo},
		"visaoFiltro":                {"PROJ"},
		"usuarioFiltro":              {cfg.UserName},
		"idusuarioFiltro":            {cfg.UserID},
		"perfilFiltro":               {"RESPONSAVEL_DELIVERY|RESPONSAVEL_LANCAMENTO|VISITANTE"},
		"telaFiltro":                 {"painel_projetos"},
	}
}

func (f *Fetcher) Download(ctx context.Context) ([]byte, error) {
	endpoint, err := url.Parse(f.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid export url: %w", domain.ErrNetwork, err)
	}
	endpoint.RawQuery = ExportQuery(f.cfg).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrNetwork, err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", f.cfg.Accept)

	f.log.InfoContext(ctx, "downloading export", slog.String("url", f.cfg.URL))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to download export: %w", domain.ErrNetwork, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.log.DebugContext(ctx, "failed to close export body", slog.String("err", err.Error()))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %s", domain.ErrNetwork, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read export body: %w", domain.ErrNetwork, err)
	}

	f.log.InfoContext(ctx, "export downloaded", slog.Int("bytes", len(data)))

	return data, nil
}
