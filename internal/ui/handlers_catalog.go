package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"omnicalc/internal/domain"
)

func sessionOrNil(r *http.Request) *domain.Session {
	if s, ok := domain.SessionFromContext(r.Context()); ok {
		return &s
	}
	return nil
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categories, err := h.Catalog.Categories(ctx)
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The catalog could not be loaded."))
		return
	}
	byCategory := make(map[string][]domain.Calculator, len(categories))
	for _, cat := range categories {
		calculators, err := h.Catalog.Calculators(ctx, cat.Slug)
		if err != nil {
			renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The catalog could not be loaded."))
			return
		}
		byCategory[cat.Slug] = calculators
	}
	renderHTML(w, http.StatusOK, homePage(sessionOrNil(r), categories, byCategory))
}

func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "categorySlug")

	categories, err := h.Catalog.Categories(ctx)
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The catalog could not be loaded."))
		return
	}
	var current *domain.CalculatorCategory
	for i := range categories {
		if categories[i].Slug == slug {
			current = &categories[i]
			break
		}
	}
	if current == nil {
		renderHTML(w, http.StatusNotFound, errorPage("Not found", "No such calculator category."))
		return
	}
	calculators, err := h.Catalog.Calculators(ctx, slug)
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The catalog could not be loaded."))
		return
	}
	renderHTML(w, http.StatusOK, categoryPage(sessionOrNil(r), categories, *current, calculators))
}

// CalculatorPage renders a calculator. Submissions come back as a GET with
// query parameters plus calculate=1, so results are linkable and the page
// stays stateless.
func (h *Handler) CalculatorPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "calcSlug")

	c, err := h.Catalog.Calculator(ctx, slug)
	if err != nil {
		renderHTML(w, http.StatusNotFound, errorPage("Not found", "No such calculator."))
		return
	}
	form, ok := calcForms[slug]
	if !ok {
		renderHTML(w, http.StatusNotFound, errorPage("Not found", "This calculator is not available yet."))
		return
	}
	categories, err := h.Catalog.Categories(ctx)
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The catalog could not be loaded."))
		return
	}

	query := r.URL.Query()
	submitted := make(map[string]string, len(form.Fields))
	for _, f := range form.Fields {
		submitted[f.Name] = query.Get(f.Name)
	}

	var result *calcResult
	computeErr := ""
	tip := ""
	if query.Get("calculate") == "1" {
		res, err := form.Compute(newFormValues(query, form.Fields))
		if err != nil {
			computeErr = err.Error()
		} else {
			result = &res
			tip = h.Suggest.NextStep(ctx, c)
		}
	}

	renderHTML(w, http.StatusOK, calculatorPage(sessionOrNil(r), categories, c, form, submitted, result, computeErr, tip))
}
