// Package viacep consulta endereço por CEP na API pública do ViaCEP.
package viacep

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"contaspagar_backend/internals/helpers/format"
)

// BaseURL é substituível em teste.
var BaseURL = "https://viacep.com.br/ws"

var httpClient = &http.Client{Timeout: 10 * time.Second}

type Address struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        bool   `json:"erro,omitempty"`
}

var (
	ErrInvalidCEP  = fmt.Errorf("o CEP deve conter 8 dígitos")
	ErrCEPNotFound = fmt.Errorf("CEP não encontrado")
)

// FetchAddress busca o endereço de um CEP de 8 dígitos (máscara é removida).
func FetchAddress(cep string) (*Address, error) {
	clean := format.UnformatCEP(cep)
	if len(clean) != 8 {
		return nil, ErrInvalidCEP
	}

	resp, err := httpClient.Get(fmt.Sprintf("%s/%s/json/", BaseURL, clean))
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar CEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consulta de CEP retornou status %d", resp.StatusCode)
	}

	var addr Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		return nil, fmt.Errorf("resposta de CEP inválida: %w", err)
	}
	// ViaCEP responde 200 com {"erro": true} quando o CEP não existe
	if addr.Erro {
		return nil, ErrCEPNotFound
	}

	return &addr, nil
}
