package receipts

import (
	"context"
	"log/slog"
	"strings"

	"upireceipts.in/app/internal/modules/payments"
	"upireceipts.in/app/internal/notify"
	"upireceipts.in/app/internal/shared/apperr"
	"upireceipts.in/app/internal/storage"
)

type Request struct {
	From string // sender address from the chat webhook
	Body string // free-text message content
}

type Result struct {
	PDFURL string
}

// Pipeline runs one webhook invocation end to end: parse the transaction id,
// look up the completed payment, render the PDF, save it durably, then notify
// the sender with the retrieval URL. Every step is awaited before the next;
// distinct requests run concurrently with no coordination.
type Pipeline struct {
	lookup     payments.Lookup
	store      storage.Store
	dispatcher notify.Dispatcher
	logger     *slog.Logger
	baseURL    string
	fallbackTo string // destination for fallback notices when the sender is unknown
}

type PipelineConfig struct {
	Lookup     payments.Lookup
	Store      storage.Store
	Dispatcher notify.Dispatcher
	Logger     *slog.Logger
	BaseURL    string
	FallbackTo string
}

func NewPipeline(cfg PipelineConfig) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		lookup:     cfg.Lookup,
		store:      cfg.Store,
		dispatcher: cfg.Dispatcher,
		logger:     logger,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		fallbackTo: cfg.FallbackTo,
	}
}

// Run executes the pipeline. On any failure exactly one fallback notice is
// attempted; its own failure is logged and swallowed so it never masks the
// primary error returned to the caller.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	res, err := p.run(ctx, req)
	if err != nil {
		p.sendFallback(ctx, req.From, err)
		return Result{}, err
	}
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, req Request) (Result, error) {
	token, err := ParseTransactionID(req.Body)
	if err != nil {
		return Result{}, err
	}
	if !ValidToken(token) {
		return Result{}, apperr.InvalidErr("Transaction ID contains unexpected characters.", nil)
	}

	rec, err := p.lookup.FindCompleted(ctx, token)
	if err != nil {
		return Result{}, err
	}

	data, err := Render(rec)
	if err != nil {
		return Result{}, apperr.RenderErr(err)
	}

	name := FileName(token)
	if err := p.store.Save(ctx, name, data); err != nil {
		return Result{}, apperr.StoreErr(err)
	}

	url := p.baseURL + "/receipts/" + name
	body := "Thank you for your donation! Your receipt is attached."
	if err := p.dispatcher.Send(ctx, req.From, body, []string{url}); err != nil {
		return Result{}, apperr.DispatchErr(err)
	}

	p.logger.InfoContext(ctx, "receipt delivered", "transaction_id", token, "to", req.From)
	return Result{PDFURL: url}, nil
}

func (p *Pipeline) sendFallback(ctx context.Context, to string, cause error) {
	if to == "" {
		to = p.fallbackTo
	}
	if to == "" || p.dispatcher == nil {
		return
	}

	if err := p.dispatcher.Send(ctx, to, fallbackBody(cause), nil); err != nil {
		// Best effort only: a secondary failure has no actionable recipient.
		p.logger.ErrorContext(ctx, "fallback notification failed", "to", to, "err", err)
	}
}

func fallbackBody(cause error) string {
	if ae, ok := apperr.As(cause); ok {
		switch ae.Kind {
		case apperr.Invalid:
			return `Sorry, we could not read a transaction ID from your message. Please send it as "Transaction ID: <your id>".`
		case apperr.NotFound:
			return "We could not find a completed donation for that transaction ID. Please check the ID and try again."
		}
	}
	return "Something went wrong while preparing your receipt. Please try again in a little while."
}
