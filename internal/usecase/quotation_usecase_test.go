package usecase

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"conecta_tool/internal/domain/approval"
	"conecta_tool/internal/domain/entities"
	mock_interfaces "conecta_tool/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func requestFixtures() []entities.Requirement {
	return []entities.Requirement{
		{ID: "r1", RequestID: "req1", Name: "Electrical", Quotations: []entities.CompanyQuotation{
			{ID: "q1", CompanyID: "comp1", MaterialCost: floatPtr(100), DirectCost: floatPtr(50), IndirectCost: floatPtr(25), Price: floatPtr(200)},
			{ID: "q2", CompanyID: "comp2", MaterialCost: floatPtr(80), DirectCost: floatPtr(40), IndirectCost: floatPtr(10), Price: floatPtr(150)},
		}},
	}
}

type quotationMocks struct {
	requirements     *mock_interfaces.MockIRequirementRepository
	clientQuotations *mock_interfaces.MockIClientQuotationRepository
	requests         *mock_interfaces.MockIProjectRequestRepository
	files            *mock_interfaces.MockIFileStore
}

func newQuotationUseCaseTest(ctrl *gomock.Controller) (*QuotationUseCase, quotationMocks) {
	m := quotationMocks{
		requirements:     mock_interfaces.NewMockIRequirementRepository(ctrl),
		clientQuotations: mock_interfaces.NewMockIClientQuotationRepository(ctrl),
		requests:         mock_interfaces.NewMockIProjectRequestRepository(ctrl),
		files:            mock_interfaces.NewMockIFileStore(ctrl),
	}
	u := NewQuotationUseCase(m.requirements, m.clientQuotations, m.requests, m.files)
	u.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return u, m
}

func TestGetWorkflow(t *testing.T) {
	t.Run("invalid request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, _ := newQuotationUseCaseTest(ctrl)
		if _, err := u.GetWorkflow(context.Background(), "  "); err != ErrInvalidRequestID {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("seeds decisions and totals from persisted approvals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)

		reqs := requestFixtures()
		reqs[0].Quotations[0].IsClientApproved = boolPtr(true)
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(reqs, nil)
		m.requests.EXPECT().GetClientName(gomock.Any(), "req1").Return("Constructora Sol", nil)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(entities.ClientQuotation{}, nil)

		got, err := u.GetWorkflow(context.Background(), "req1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ClientName != "Constructora Sol" {
			t.Fatalf("unexpected client name: %s", got.ClientName)
		}
		if !got.Decisions["q1"].IsApproved() || got.Decisions["q2"].Decided() {
			t.Fatalf("unexpected seeded decisions: %+v", got.Decisions)
		}
		want := approval.Totals{Material: 100, Direct: 50, Indirect: 25, Price: 200}
		if got.OverallTotals != want {
			t.Fatalf("unexpected totals: %+v", got.OverallTotals)
		}
		if got.SuggestedClientPrice != 200 {
			t.Fatalf("unexpected suggested price: %v", got.SuggestedClientPrice)
		}
		if got.Existing != nil {
			t.Fatalf("expected no existing quotation")
		}
	})

	t.Run("client name failure degrades to placeholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)

		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)
		m.requests.EXPECT().GetClientName(gomock.Any(), "req1").Return("", errors.New("table offline"))
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(entities.ClientQuotation{}, nil)

		got, err := u.GetWorkflow(context.Background(), "req1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ClientName != fallbackClientName {
			t.Fatalf("expected %q, got %q", fallbackClientName, got.ClientName)
		}
	})

	t.Run("existing client quotation attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)

		existing := entities.ClientQuotation{RequestID: "req1", FileName: "cotizacion.pdf", FileKey: "client-quotations/req1/cotizacion.pdf"}
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)
		m.requests.EXPECT().GetClientName(gomock.Any(), "req1").Return("Constructora Sol", nil)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(existing, nil)

		got, err := u.GetWorkflow(context.Background(), "req1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Existing == nil || got.Existing.FileName != "cotizacion.pdf" {
			t.Fatalf("unexpected existing quotation: %+v", got.Existing)
		}
	})
}

func TestComputeTotals(t *testing.T) {
	t.Run("unknown quotation rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)

		_, err := u.ComputeTotals(context.Background(), "req1", []entities.ApprovalDecision{{QuotationID: "ghost", Approved: true}})
		if err != ErrUnknownQuotationDecision {
			t.Fatalf("expected ErrUnknownQuotationDecision, got %v", err)
		}
	})

	t.Run("totals over approved only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)

		got, err := u.ComputeTotals(context.Background(), "req1", []entities.ApprovalDecision{
			{QuotationID: "q1", Approved: true},
			{QuotationID: "q2", Approved: false, Reason: "over budget"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := approval.Totals{Material: 100, Direct: 50, Indirect: 25, Price: 200}
		if got.OverallTotals != want || got.SuggestedClientPrice != 200 {
			t.Fatalf("unexpected report: %+v", got)
		}
		if got.RequirementTotals["r1"] != want {
			t.Fatalf("unexpected requirement totals: %+v", got.RequirementTotals)
		}
	})
}

func TestSubmit(t *testing.T) {
	decisions := []entities.ApprovalDecision{
		{QuotationID: "q1", Approved: true},
		{QuotationID: "q2", Approved: false, Reason: "over budget"},
	}

	t.Run("validation failure blocks every write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(entities.ClientQuotation{}, nil)
		// No ApplyDecisions, Upload or Save expectations: any call fails
		// the controller.

		_, err := u.Submit(context.Background(), SubmitInput{
			RequestID:        "req1",
			Decisions:        decisions,
			ClientPriceInput: "$0.00",
			File:             strings.NewReader("pdf"),
			FileName:         "cotizacion.pdf",
		})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Result.Code != approval.CodeInvalidClientPrice {
			t.Fatalf("expected INVALID_CLIENT_PRICE, got %+v", ve.Result)
		}
	})

	t.Run("decision batch failure aborts before client quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)
		boom := errors.New("transaction canceled")
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(entities.ClientQuotation{}, nil)
		m.requirements.EXPECT().ApplyDecisions(gomock.Any(), gomock.Any()).Return(boom)

		_, err := u.Submit(context.Background(), SubmitInput{
			RequestID:        "req1",
			Decisions:        decisions,
			ClientPriceInput: "350",
			File:             strings.NewReader("pdf"),
			FileName:         "cotizacion.pdf",
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected propagated error, got %v", err)
		}
	})

	t.Run("submits with new file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)

		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(entities.ClientQuotation{}, nil)
		m.requirements.EXPECT().
			ApplyDecisions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []entities.ApprovalDecision) error {
				if len(batch) != 2 {
					t.Fatalf("expected 2 decisions, got %d", len(batch))
				}
				return nil
			})
		m.files.EXPECT().
			Upload(gomock.Any(), "client-quotations/req1/cotizacion.pdf", "application/pdf", gomock.Any()).
			Return(nil)
		m.clientQuotations.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cq entities.ClientQuotation) (entities.ClientQuotation, error) {
				return cq, nil
			})

		got, err := u.Submit(context.Background(), SubmitInput{
			RequestID:        "req1",
			Decisions:        decisions,
			ClientPriceInput: "$1,234.567",
			Observations:     " entrega parcial ",
			FileName:         "cotizacion.pdf",
			FileContentType:  "application/pdf",
			File:             strings.NewReader("pdf"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FileKey != "client-quotations/req1/cotizacion.pdf" || got.FileName != "cotizacion.pdf" {
			t.Fatalf("unexpected file fields: %+v", got)
		}
		if got.ClientPrice != 1234.57 {
			t.Fatalf("expected rounded price 1234.57, got %v", got.ClientPrice)
		}
		if got.Observations != "entrega parcial" {
			t.Fatalf("unexpected observations: %q", got.Observations)
		}
		if !reflect.DeepEqual(got.SelectedCompanyIDs, []string{"comp1"}) {
			t.Fatalf("unexpected selected companies: %+v", got.SelectedCompanyIDs)
		}
		if !got.CreatedAt.Equal(u.now()) || !got.UpdatedAt.Equal(u.now()) {
			t.Fatalf("unexpected timestamps: %+v", got)
		}
	})

	t.Run("resubmission keeps the stored file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)

		created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		existing := entities.ClientQuotation{
			RequestID: "req1",
			FileName:  "anterior.pdf",
			FileKey:   "client-quotations/req1/anterior.pdf",
			CreatedAt: created,
		}
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(existing, nil)
		m.requirements.EXPECT().ApplyDecisions(gomock.Any(), gomock.Any()).Return(nil)
		m.clientQuotations.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cq entities.ClientQuotation) (entities.ClientQuotation, error) {
				return cq, nil
			})

		got, err := u.Submit(context.Background(), SubmitInput{
			RequestID:        "req1",
			Decisions:        decisions,
			ClientPriceInput: "350",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FileName != "anterior.pdf" || got.FileKey != "client-quotations/req1/anterior.pdf" {
			t.Fatalf("expected stored file retained, got %+v", got)
		}
		if !got.CreatedAt.Equal(created) {
			t.Fatalf("expected original created_at retained, got %v", got.CreatedAt)
		}
		if !got.UpdatedAt.Equal(u.now()) {
			t.Fatalf("expected updated_at refreshed, got %v", got.UpdatedAt)
		}
	})

	t.Run("upload failure blocks the client quotation save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)

		boom := errors.New("bucket unavailable")
		m.requirements.EXPECT().ListByRequestID(gomock.Any(), "req1").Return(requestFixtures(), nil)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(entities.ClientQuotation{}, nil)
		m.requirements.EXPECT().ApplyDecisions(gomock.Any(), gomock.Any()).Return(nil)
		m.files.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		_, err := u.Submit(context.Background(), SubmitInput{
			RequestID:        "req1",
			Decisions:        decisions,
			ClientPriceInput: "350",
			FileName:         "cotizacion.pdf",
			File:             strings.NewReader("pdf"),
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected propagated error, got %v", err)
		}
	})
}

func TestDownloadFile(t *testing.T) {
	t.Run("no client quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").Return(entities.ClientQuotation{}, nil)

		if _, _, _, err := u.DownloadFile(context.Background(), "req1"); err != ErrClientQuotationNotFound {
			t.Fatalf("expected ErrClientQuotationNotFound, got %v", err)
		}
	})

	t.Run("no stored file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").
			Return(entities.ClientQuotation{RequestID: "req1"}, nil)

		if _, _, _, err := u.DownloadFile(context.Background(), "req1"); err != ErrQuotationFileNotFound {
			t.Fatalf("expected ErrQuotationFileNotFound, got %v", err)
		}
	})

	t.Run("streams the stored file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newQuotationUseCaseTest(ctrl)
		m.clientQuotations.EXPECT().GetByRequestID(gomock.Any(), "req1").
			Return(entities.ClientQuotation{RequestID: "req1", FileName: "cotizacion.pdf", FileKey: "client-quotations/req1/cotizacion.pdf"}, nil)
		m.files.EXPECT().Download(gomock.Any(), "client-quotations/req1/cotizacion.pdf").
			Return(io.NopCloser(strings.NewReader("pdf")), "application/pdf", nil)

		body, name, contentType, err := u.DownloadFile(context.Background(), "req1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer body.Close()
		if name != "cotizacion.pdf" || contentType != "application/pdf" {
			t.Fatalf("unexpected metadata: %s %s", name, contentType)
		}
		data, _ := io.ReadAll(body)
		if string(data) != "pdf" {
			t.Fatalf("unexpected body: %q", data)
		}
	})
}
