package plaid

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ttyf-labs/ttyf/internal/models"
)

func TestListAccounts_NormalizesBalancesAndTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/get" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["client_id"] != "cid" || body["secret"] != "shh" {
			t.Error("client credentials should be injected into the body")
		}
		if body["access_token"] != "tok-1" {
			t.Errorf("access_token = %v", body["access_token"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"accounts": [
				{
					"account_id": "acc-1",
					"name": "Everyday Checking",
					"mask": "0000",
					"type": "depository",
					"subtype": "checking",
					"balances": {"available": 100.5, "current": 110.25, "limit": null, "iso_currency_code": "USD"}
				},
				{
					"account_id": "acc-2",
					"name": "Mystery",
					"mask": "9999",
					"type": "brokerage",
					"subtype": "unknown",
					"balances": {"available": null, "current": null, "limit": null, "iso_currency_code": null}
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("cid", "shh", WithBaseURL(srv.URL))
	accounts, err := client.ListAccounts(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}

	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}

	first := accounts[0]
	if first.Type != models.AccountTypeDepository {
		t.Errorf("type = %q, want depository", first.Type)
	}
	if first.Balances.Current == nil || *first.Balances.Current != 110.25 {
		t.Errorf("current = %v, want 110.25", first.Balances.Current)
	}
	if first.Balances.Limit != nil {
		t.Error("null limit should stay nil, not become a sentinel")
	}
	if first.HolderCategory != nil || first.OfficialName != nil {
		t.Error("absent optional fields should stay nil")
	}

	// Unknown upstream type normalizes to "other" rather than failing
	if accounts[1].Type != models.AccountTypeOther {
		t.Errorf("unknown type normalized to %q, want other", accounts[1].Type)
	}
	if accounts[1].Balances.Current != nil {
		t.Error("null current should stay nil")
	}
}

func TestListTransactions_PagesUntilTotal(t *testing.T) {
	page := func(ids ...string) []map[string]any {
		txns := make([]map[string]any, len(ids))
		for i, id := range ids {
			txns[i] = map[string]any{
				"account_id":        "acc-1",
				"amount":            5.0,
				"date":              "2026-08-0" + id,
				"name":              "txn " + id,
				"merchant_name":     nil,
				"pending":           false,
				"iso_currency_code": "USD",
				"personal_finance_category": map[string]any{
					"primary":          "FOOD_AND_DRINK",
					"detailed":         "FOOD_AND_DRINK_COFFEE",
					"confidence_level": "HIGH",
				},
			}
		}
		return txns
	}

	var offsets []float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			Options   struct {
				AccountIDs []string `json:"account_ids"`
				Count      int      `json:"count"`
				Offset     float64  `json:"offset"`
			} `json:"options"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		offsets = append(offsets, body.Options.Offset)

		if body.StartDate != "2026-08-01" || body.EndDate != "2026-08-09" {
			t.Errorf("date range = %s..%s", body.StartDate, body.EndDate)
		}
		if len(body.Options.AccountIDs) != 1 || body.Options.AccountIDs[0] != "acc-1" {
			t.Errorf("account_ids = %v", body.Options.AccountIDs)
		}

		resp := map[string]any{"total_transactions": 3}
		if body.Options.Offset == 0 {
			resp["transactions"] = page("1", "2")
		} else {
			resp["transactions"] = page("3")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient("cid", "shh", WithBaseURL(srv.URL))
	txns, err := client.ListTransactions(context.Background(), "tok-1", "acc-1", "2026-08-01", "2026-08-09")
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}

	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}
	if len(offsets) != 2 || offsets[0] != 0 || offsets[1] != 2 {
		t.Errorf("offsets = %v, want [0 2]", offsets)
	}
	if txns[0].Category == nil || txns[0].Category.Primary != "FOOD_AND_DRINK" {
		t.Error("category should be normalized")
	}
	if txns[0].MerchantName != nil {
		t.Error("null merchant_name should stay nil")
	}
	if txns[0].AccountName != "" {
		t.Error("account context is denormalized by the caller, not the client")
	}
}

func TestPost_Non200BecomesUpstreamRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code": "INVALID_ACCESS_TOKEN"}`))
	}))
	defer srv.Close()

	client := NewClient("cid", "shh", WithBaseURL(srv.URL))
	_, err := client.ListAccounts(context.Background(), "bad-token")
	if err == nil {
		t.Fatal("expected an error")
	}

	var reqErr *models.UpstreamRequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *models.UpstreamRequestError", err)
	}
	if reqErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", reqErr.StatusCode)
	}
	if reqErr.Endpoint != "/accounts/get" {
		t.Errorf("endpoint = %q", reqErr.Endpoint)
	}
}
