package httpclient

import (
	"context"
	"net/http"

	"pet-adoption-api/internal/seed"
)

// GenerateDataResult es la respuesta de POST /api/mocks/generateData.
type GenerateDataResult struct {
	Message string `json:"message"`
	Users   int    `json:"users"`
	Pets    int    `json:"pets"`
}

// TriggerSeed pide a la API que repueble su store.
func (c *Client) TriggerSeed(ctx context.Context) (seed.Result, error) {
	var res seed.Result
	if err := c.DoJSON(ctx, http.MethodPost, "/api/mocks/seed", nil, &res); err != nil {
		return seed.Result{}, err
	}
	return res, nil
}

// GenerateData inserta users usuarios y pets mascotas con dueño al azar.
func (c *Client) GenerateData(ctx context.Context, users, pets int) (GenerateDataResult, error) {
	in := map[string]int{"users": users, "pets": pets}

	var res GenerateDataResult
	if err := c.DoJSON(ctx, http.MethodPost, "/api/mocks/generateData", in, &res); err != nil {
		return GenerateDataResult{}, err
	}
	return res, nil
}
