package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/directory"
	"github.com/aleister1102/stalewatch/internal/evaluator"
	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/aleister1102/stalewatch/internal/notifier"
	"github.com/rs/zerolog"
)

// VersionFeed provides the platform-keyed set of current versions
type VersionFeed interface {
	FetchLatestVersions(ctx context.Context) (models.LatestVersionSet, error)
}

// Inventory provides the fleet's observed host reports
type Inventory interface {
	FetchHostReports(ctx context.Context) ([]models.HostRecord, int, error)
}

// ContactResolver maps hardware serials to responsible contacts
type ContactResolver interface {
	AcquireToken(ctx context.Context) (directory.Token, error)
	ResolveContact(ctx context.Context, token directory.Token, hardwareSerial string) (models.Contact, error)
}

// Notifier delivers one reminder per stale host
type Notifier interface {
	Notify(ctx context.Context, event models.NotificationEvent) (notifier.Outcome, error)
}

// Orchestrator composes one stateless pipeline pass: fetch the version feed
// and the inventory once, evaluate every host, and resolve-and-notify the
// stale ones on a bounded worker pool. It holds no state across runs.
type Orchestrator struct {
	feed      VersionFeed
	inventory Inventory
	resolver  ContactResolver
	notifier  Notifier
	cfg       config.RunnerConfig
	runID     string
	logger    zerolog.Logger
}

// NewOrchestrator creates a new run orchestrator. All collaborators are
// injected so tests can substitute fakes.
func NewOrchestrator(
	feed VersionFeed,
	inventory Inventory,
	resolver ContactResolver,
	notifier Notifier,
	cfg config.RunnerConfig,
	runID string,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		feed:      feed,
		inventory: inventory,
		resolver:  resolver,
		notifier:  notifier,
		cfg:       cfg,
		runID:     runID,
		logger:    logger.With().Str("component", "Orchestrator").Str("run_id", runID).Logger(),
	}
}

// hostOutcome is one worker's result for one stale host
type hostOutcome struct {
	notified   bool
	suppressed bool
	hostErr    *models.HostError
}

// RunOnce executes one full pipeline pass. Per-host failures are recorded in
// the summary and skipped; a feed, inventory, or directory-auth failure
// aborts with a GlobalDependencyError.
func (o *Orchestrator) RunOnce(ctx context.Context) (summary models.RunSummary, err error) {
	summary = models.RunSummary{
		RunID:     o.runID,
		StartedAt: time.Now(),
	}
	defer func() {
		summary.Duration = time.Since(summary.StartedAt)
	}()

	if o.cfg.RunTimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(o.cfg.RunTimeoutSecs)*time.Second)
		defer cancel()
	}

	latest, err := o.feed.FetchLatestVersions(ctx)
	if err != nil {
		return summary, &GlobalDependencyError{Stage: "version_feed", Err: err}
	}

	records, dropped, err := o.inventory.FetchHostReports(ctx)
	if err != nil {
		return summary, &GlobalDependencyError{Stage: "inventory", Err: err}
	}
	summary.InvalidRecords = dropped

	staleHosts := o.evaluateHosts(records, latest, &summary)
	if len(staleHosts) == 0 {
		o.logger.Info().Str("summary", summary.String()).Msg("Run complete, no stale hosts")
		return summary, nil
	}

	// One token acquisition before fan-out; workers share it read-only
	token, err := o.resolver.AcquireToken(ctx)
	if err != nil {
		return summary, &GlobalDependencyError{Stage: "directory_auth", Err: err}
	}

	o.notifyStaleHosts(ctx, staleHosts, latest, token, &summary)

	// A fired run deadline must not masquerade as N unlucky hosts
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		o.logger.Error().Str("summary", summary.String()).Msg("Run deadline exceeded during notification fan-out")
		return summary, &GlobalDependencyError{Stage: "run_deadline", Err: ctx.Err()}
	}

	o.logger.Info().Str("summary", summary.String()).Msg("Run complete")
	return summary, nil
}

// evaluateHosts applies the staleness rule to every record and returns the
// stale subset. Evaluation is pure; only counters are updated here.
func (o *Orchestrator) evaluateHosts(records []models.HostRecord, latest models.LatestVersionSet, summary *models.RunSummary) []models.HostRecord {
	var staleHosts []models.HostRecord

	for _, record := range records {
		summary.Evaluated++

		switch evaluator.Evaluate(record.ObservedVersion, record.Platform, latest) {
		case evaluator.VerdictCurrent:
			continue
		case evaluator.VerdictUnknownPlatform:
			summary.Indeterminate++
			o.logger.Warn().
				Str("hardware_serial", record.HardwareSerial).
				Str("platform", record.Platform.String()).
				Msg("No version feed for platform, skipping host")
		case evaluator.VerdictStale:
			summary.Stale++
			staleHosts = append(staleHosts, record)
		}
	}

	return staleHosts
}

// notifyStaleHosts resolves and notifies stale hosts on a bounded worker
// pool. Hosts share only the read-only version set and token, so no locking
// beyond result aggregation is needed.
func (o *Orchestrator) notifyStaleHosts(ctx context.Context, staleHosts []models.HostRecord, latest models.LatestVersionSet, token directory.Token, summary *models.RunSummary) {
	workerCount := o.cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = config.DefaultRunnerWorkerCount
	}
	if workerCount > len(staleHosts) {
		workerCount = len(staleHosts)
	}

	jobs := make(chan models.HostRecord)
	results := make(chan hostOutcome, len(staleHosts))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				results <- o.processStaleHost(ctx, record, latest, token)
			}
		}()
	}

	for _, record := range staleHosts {
		jobs <- record
	}
	close(jobs)
	wg.Wait()
	close(results)

	for outcome := range results {
		if outcome.notified {
			summary.Notified++
		}
		if outcome.suppressed {
			summary.Suppressed++
		}
		if outcome.hostErr != nil {
			summary.HostErrors = append(summary.HostErrors, *outcome.hostErr)
		}
	}
}

// processStaleHost resolves one stale host's contact and sends the reminder.
// Every failure here is per-host: recorded and skipped, never fatal.
func (o *Orchestrator) processStaleHost(ctx context.Context, record models.HostRecord, latest models.LatestVersionSet, token directory.Token) hostOutcome {
	contact, err := o.resolver.ResolveContact(ctx, token, record.HardwareSerial)
	if err != nil {
		return o.classifyHostError(record, err, "contact resolution failed")
	}

	event := models.NotificationEvent{
		Contact:         contact,
		HardwareSerial:  record.HardwareSerial,
		ObservedVersion: record.ObservedVersion,
		Platform:        record.Platform,
		LatestVersions:  latest[record.Platform].Versions(),
	}

	outcome, err := o.notifier.Notify(ctx, event)
	if err != nil {
		return o.classifyHostError(record, err, "delivery failed")
	}

	switch outcome {
	case notifier.OutcomeSuppressed:
		return hostOutcome{suppressed: true}
	default:
		return hostOutcome{notified: true}
	}
}

func (o *Orchestrator) classifyHostError(record models.HostRecord, err error, msg string) hostOutcome {
	kind := models.FailureResolve

	var notFound *directory.ContactNotFoundError
	var delivery *notifier.DeliveryError
	switch {
	case errors.As(err, &notFound):
		kind = models.FailureContactNotFound
	case errors.As(err, &delivery):
		kind = models.FailureDelivery
	}

	o.logger.Error().
		Err(err).
		Str("hardware_serial", record.HardwareSerial).
		Str("failure_kind", string(kind)).
		Msg(msg)

	return hostOutcome{hostErr: &models.HostError{
		HardwareSerial: record.HardwareSerial,
		Kind:           kind,
		Message:        err.Error(),
	}}
}
