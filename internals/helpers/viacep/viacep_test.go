package viacep

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	old := BaseURL
	BaseURL = srv.URL
	t.Cleanup(func() { BaseURL = old })
}

func TestFetchAddressSucesso(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	})

	// A máscara é removida antes da consulta
	addr, err := FetchAddress("01310-100")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", addr.Logradouro)
	assert.Equal(t, "São Paulo", addr.Localidade)
	assert.Equal(t, "SP", addr.UF)
}

func TestFetchAddressCEPInexistente(t *testing.T) {
	// ViaCEP responde 200 com {"erro": true} para CEP que não existe
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	})

	_, err := FetchAddress("99999999")
	assert.ErrorIs(t, err, ErrCEPNotFound)
}

func TestFetchAddressCEPInvalido(t *testing.T) {
	_, err := FetchAddress("1234")
	assert.ErrorIs(t, err, ErrInvalidCEP)

	_, err = FetchAddress("")
	assert.ErrorIs(t, err, ErrInvalidCEP)
}

func TestFetchAddressErroHTTP(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := FetchAddress("01310100")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCEPNotFound)
}
