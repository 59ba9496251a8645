package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

func templateMux(svc *mockDUPATemplateService) *http.ServeMux {
	h := NewDUPATemplateHandler(svc)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dupa-templates", h.List)
	mux.HandleFunc("POST /api/dupa-templates", h.Create)
	mux.HandleFunc("GET /api/dupa-templates/{id}", h.Get)
	mux.HandleFunc("PUT /api/dupa-templates/{id}", h.Update)
	mux.HandleFunc("DELETE /api/dupa-templates/{id}", h.Delete)
	mux.HandleFunc("POST /api/dupa-templates/{id}/instantiate", h.Instantiate)
	return mux
}

const templateBody = `{
	"payItemNumber": "801(1)",
	"description": "Removal of Structures and Obstruction",
	"unit": "l.s.",
	"outputPerHour": 1,
	"laborTemplate": [{"designation": "Foreman", "noOfPersons": 1, "noOfHours": 8}],
	"equipmentTemplate": [{"description": "Dump Truck", "noOfUnits": 1, "noOfHours": 8}],
	"materialTemplate": [{"materialCode": "MAT-001", "description": "Cement", "unit": "bag", "quantity": 10}]
}`

func TestDUPATemplateHandler_ListFilters(t *testing.T) {
	var got model.DUPATemplateFilter
	mux := templateMux(&mockDUPATemplateService{
		listFunc: func(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error) {
			got = f
			return []*model.DUPATemplate{{ID: templateID, PayItemNumber: "801(1)"}}, nil
		},
	})

	rec := serve(mux, "GET", "/api/dupa-templates?search=removal&active=true", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Search != "removal" || !got.ActiveOnly {
		t.Errorf("unexpected filter %+v", got)
	}
	var resp struct {
		Templates []*model.DUPATemplate `json:"templates"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Templates) != 1 {
		t.Errorf("expected 1 template, got %d", len(resp.Templates))
	}
}

func TestDUPATemplateHandler_Create(t *testing.T) {
	var got *model.DUPATemplateInput
	mux := templateMux(&mockDUPATemplateService{
		createFunc: func(ctx context.Context, in *model.DUPATemplateInput) (*model.DUPATemplate, error) {
			got = in
			return &model.DUPATemplate{ID: templateID, PayItemNumber: in.PayItemNumber}, nil
		},
	})

	rec := serve(mux, "POST", "/api/dupa-templates", templateBody)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(got.Labor) != 1 || got.Labor[0].Designation != model.DesignationForeman {
		t.Errorf("unexpected labor %+v", got.Labor)
	}
	if len(got.Materials) != 1 || got.Materials[0].Quantity != 10 {
		t.Errorf("unexpected materials %+v", got.Materials)
	}
}

func TestDUPATemplateHandler_CreateUnknownDesignation(t *testing.T) {
	body := `{"payItemNumber":"801(1)","description":"x","unit":"l.s.",
		"laborTemplate":[{"designation":"Site Boss","noOfPersons":1,"noOfHours":8}]}`

	rec := serve(templateMux(&mockDUPATemplateService{}), "POST", "/api/dupa-templates", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	fields := decodeError(t, rec).Fields
	if fields["laborTemplate[0].designation"] != "designation" {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestDUPATemplateHandler_UpdateInvalidInput(t *testing.T) {
	mux := templateMux(&mockDUPATemplateService{
		updateFunc: func(ctx context.Context, id string, in *model.DUPATemplateInput) (*model.DUPATemplate, error) {
			return nil, service.ErrInvalidInput
		},
	})

	rec := serve(mux, "PUT", "/api/dupa-templates/"+templateID, templateBody)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestDUPATemplateHandler_GetNotFound(t *testing.T) {
	rec := serve(templateMux(&mockDUPATemplateService{}), "GET", "/api/dupa-templates/"+templateID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDUPATemplateHandler_Instantiate(t *testing.T) {
	var gotID string
	var got *model.InstantiateInput
	mux := templateMux(&mockDUPATemplateService{
		instantiateFunc: func(ctx context.Context, id string, in *model.InstantiateInput) (*model.ComputedData, error) {
			gotID, got = id, in
			return &model.ComputedData{
				TemplateID: id,
				Location:   in.Location,
				CostBreakdown: model.CostBreakdown{
					DirectCost: 3880,
					TotalCost:  5434.39,
				},
			}, nil
		},
	})

	rec := serve(mux, "POST", "/api/dupa-templates/"+templateID+"/instantiate",
		`{"location":"Malaybalay City, Bukidnon","cpPercentage":5}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotID != templateID || got.Location != "Malaybalay City, Bukidnon" {
		t.Errorf("unexpected call %s %+v", gotID, got)
	}
	if got.CPPercentage == nil || *got.CPPercentage != 5 || got.OCMPercentage != nil {
		t.Errorf("unexpected percentages %v/%v", got.OCMPercentage, got.CPPercentage)
	}
	var data model.ComputedData
	if err := json.NewDecoder(rec.Body).Decode(&data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.DirectCost != 3880 {
		t.Errorf("expected direct cost 3880, got %v", data.DirectCost)
	}
}

func TestDUPATemplateHandler_InstantiateRequiresLocation(t *testing.T) {
	rec := serve(templateMux(&mockDUPATemplateService{}), "POST",
		"/api/dupa-templates/"+templateID+"/instantiate", `{"location":""}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Fields["location"]; got != "required" {
		t.Errorf("expected location=required, got %q", got)
	}
}

func TestDUPATemplateHandler_InstantiateErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"template missing", &estimate.NotFoundError{Resource: "template", Key: templateID}, http.StatusNotFound},
		{"no labor rates", &estimate.NotFoundError{Resource: "labor rates", Key: "Nowhere"}, http.StatusNotFound},
		{"invalid input", &estimate.ValidationError{Field: "location", Message: "is required"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := templateMux(&mockDUPATemplateService{
				instantiateFunc: func(ctx context.Context, id string, in *model.InstantiateInput) (*model.ComputedData, error) {
					return nil, tt.err
				},
			})
			rec := serve(mux, "POST", "/api/dupa-templates/"+templateID+"/instantiate", `{"location":"Nowhere"}`)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
