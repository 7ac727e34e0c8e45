// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"besinrehberi/internal/calc"
)

// maxCalculatorBody bounds POST bodies; every calculator takes a handful
// of short fields.
const maxCalculatorBody = 16 << 10

// calculatorResult is the response body of a successful evaluation.
type calculatorResult struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Result any    `json:"result"`
}

// ListCalculators serves the metadata of every calculator: its name,
// title, description, and input fields with their ranges and defaults.
func ListCalculators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, calc.Registry())
}

// RunCalculator evaluates a calculator. Inputs come from the query string
// on GET, and from a JSON object or a form body on POST. Missing inputs
// take their default value.
func RunCalculator(w http.ResponseWriter, r *http.Request) {
	c, ok := calc.Lookup(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "hesaplayıcı bulunamadı")
		return
	}

	raw, err := calculatorInputs(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.Evaluate(raw)
	var inputErr *calc.InputError
	if errors.As(err, &inputErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": inputErr.Error(),
			"field": inputErr.Field,
		})
		return
	}
	if err != nil {
		fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, calculatorResult{Name: c.Name, Title: c.Title, Result: result})
}

// calculatorInputs collects raw input values from the request.
func calculatorInputs(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	raw := make(map[string]string)
	if r.Method != http.MethodPost {
		for k, v := range r.URL.Query() {
			if len(v) > 0 {
				raw[k] = v[0]
			}
		}
		return raw, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCalculatorBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return nil, errors.New("geçersiz form verisi")
		}
		for k, v := range r.Form {
			if len(v) > 0 {
				raw[k] = v[0]
			}
		}
		return raw, nil
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("geçersiz JSON gövdesi")
	}
	for k, v := range body {
		switch v := v.(type) {
		case string:
			raw[k] = v
		case float64:
			raw[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
		default:
			return nil, fmt.Errorf("%s: sayı veya metin olmalı", k)
		}
	}
	return raw, nil
}
