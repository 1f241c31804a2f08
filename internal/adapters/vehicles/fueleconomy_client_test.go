package vehicles

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuel-route-service/internal/domain"
)

func menuXML(items ...[2]string) string {
	out := `<?xml version="1.0"?><menuItems>`
	for _, it := range items {
		out += fmt.Sprintf("<menuItem><text>%s</text><value>%s</value></menuItem>", it[0], it[1])
	}
	return out + "</menuItems>"
}

func TestYears(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/rest/vehicle/menu/year" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, menuXML([2]string{"2024", "2024"}, [2]string{"2026", "2026"}, [2]string{"2025", "2025"}))
	}))
	defer srv.Close()

	c := NewFuelEconomyClientWithBaseURL(srv.URL)
	years, err := c.Years(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{2026, 2025, 2024}
	if len(years) != len(want) {
		t.Fatalf("years = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("years = %v, want newest first %v", years, want)
		}
	}
}

func TestMakesAndModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ws/rest/vehicle/menu/make":
			if r.URL.Query().Get("year") != "2024" {
				t.Errorf("year param = %q", r.URL.Query().Get("year"))
			}
			fmt.Fprint(w, menuXML([2]string{"Honda", "Honda"}, [2]string{"Toyota", "Toyota"}))
		case "/ws/rest/vehicle/menu/model":
			if r.URL.Query().Get("make") != "Honda" {
				t.Errorf("make param = %q", r.URL.Query().Get("make"))
			}
			fmt.Fprint(w, menuXML([2]string{"Civic", "Civic"}))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewFuelEconomyClientWithBaseURL(srv.URL)

	makes, err := c.Makes(context.Background(), "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(makes) != 2 || makes[0] != "Honda" {
		t.Fatalf("makes = %v", makes)
	}

	models, err := c.Models(context.Background(), "2024", "Honda")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 1 || models[0] != "Civic" {
		t.Fatalf("models = %v", models)
	}
}

func TestOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, menuXML([2]string{"Auto (AV-S7), 4 cyl, 1.5 L, Turbo", "47001"}))
	}))
	defer srv.Close()

	c := NewFuelEconomyClientWithBaseURL(srv.URL)
	options, err := c.Options(context.Background(), "2024", "Honda", "Civic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 1 || options[0].Value != "47001" {
		t.Fatalf("options = %+v", options)
	}
}

func TestCombinedMPG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/rest/vehicle/47001" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `<?xml version="1.0"?><vehicle><comb08>36</comb08></vehicle>`)
	}))
	defer srv.Close()

	c := NewFuelEconomyClientWithBaseURL(srv.URL)
	mpg, err := c.CombinedMPG(context.Background(), "47001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mpg != 36 {
		t.Fatalf("mpg = %v, want 36", mpg)
	}
}

func TestCombinedMPGMissingFigure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><vehicle><comb08></comb08></vehicle>`)
	}))
	defer srv.Close()

	c := NewFuelEconomyClientWithBaseURL(srv.URL)
	_, err := c.CombinedMPG(context.Background(), "47100")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
