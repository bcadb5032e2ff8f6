package scan

import (
	"context"
	"errors"

	"reconx/internal/domain"
	"reconx/internal/services/probe"
	"reconx/internal/services/wayback"
	"reconx/internal/toolrunner"
	"reconx/internal/ui"
)

// Options tune a single pipeline run.
type Options struct {
	// RunDig additionally shells out to dig +short for troubleshooting output.
	RunDig bool
	// UseWaybackBinary prefers a local waybackurls binary over the CDX API.
	UseWaybackBinary bool
	// MaxWayback caps collected archive URLs (after dedupe).
	MaxWayback int
	// MaxLinks caps homepage hrefs.
	MaxLinks int
}

// Pipeline wires the per-stage services into one scan.
type Pipeline struct {
	Resolver domain.Resolver
	Archive  domain.ArchiveClient
	Prober   domain.Prober
	Links    domain.LinkFetcher
	Runner   domain.Runner
	UI       *ui.Printer
}

// Run executes every stage against target and returns the report. The
// report is always non-nil; stage failures are listed in report.Errors.
// Run itself errors only when ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context, target domain.Target, opts Options) (*domain.Report, error) {
	r := domain.NewReport(target)

	p.UI.Infof("DNS enumeration for %s ...", target)
	if records, err := p.Resolver.Enumerate(ctx, target); err != nil {
		if ctx.Err() != nil {
			return r, ctx.Err()
		}
		r.AddError("dns", err)
	} else {
		r.DNS = records
	}

	if opts.RunDig {
		p.UI.Infof("Running dig +short A ...")
		res, err := p.Runner.Run(ctx, "dig", "+short", target.String())
		if err != nil {
			r.AddError("dig", err)
		} else {
			r.External["dig_A"] = res
		}
	}

	urls := p.collectWayback(ctx, target, opts, r)
	if ctx.Err() != nil {
		return r, ctx.Err()
	}
	r.Wayback = urls
	p.UI.Successf("Collected %d wayback URLs", len(urls))

	toCheck := probe.Filter(urls)
	p.UI.Infof("Checking %d URLs for liveness ...", len(toCheck))
	if len(toCheck) > 0 {
		checks, err := p.Prober.Check(ctx, toCheck)
		if err != nil {
			if ctx.Err() != nil {
				return r, ctx.Err()
			}
			r.AddError("probe", err)
		} else {
			r.WaybackCheck = checks
		}
	}

	p.UI.Infof("Fetching homepage links from https://%s ...", target)
	links, err := p.Links.Links(ctx, "https://"+target.String(), opts.MaxLinks)
	if err != nil {
		if ctx.Err() != nil {
			return r, ctx.Err()
		}
		r.AddError("links", err)
	} else {
		r.Links = links
	}

	return r, ctx.Err()
}

// collectWayback tries the waybackurls binary when asked, falling back to
// the CDX API, and records which source won in the report.
func (p *Pipeline) collectWayback(ctx context.Context, target domain.Target, opts Options, r *domain.Report) []string {
	if opts.UseWaybackBinary {
		p.UI.Infof("Trying waybackurls binary ...")
		res, err := p.Runner.Run(ctx, "waybackurls", target.String())
		switch {
		case errors.Is(err, toolrunner.ErrNotFound), errors.Is(err, toolrunner.ErrTimeout):
			p.UI.Warnf("waybackurls unavailable (%v), falling back to CDX API", err)
		case err != nil:
			r.AddError("waybackurls", err)
		default:
			r.External["waybackurls"] = domain.ToolResult{
				Binary:   res.Binary,
				Args:     res.Args,
				ExitCode: res.ExitCode,
				Stderr:   res.Stderr,
			}
			if urls := wayback.FromTool(res); len(urls) > 0 {
				r.WaybackSource = domain.WaybackSourceBinary
				return wayback.Dedupe(urls, opts.MaxWayback)
			}
			p.UI.Warnf("waybackurls produced no URLs, falling back to CDX API")
		}
	}

	p.UI.Infof("Querying Wayback CDX API ...")
	urls, err := p.Archive.URLs(ctx, target, opts.MaxWayback)
	if err != nil {
		r.AddError("wayback", err)
		return []string{}
	}
	if urls == nil {
		urls = []string{}
	}
	r.WaybackSource = domain.WaybackSourceCDX
	return urls
}
