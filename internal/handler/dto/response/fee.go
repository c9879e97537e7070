package response

import (
	"residencial-admin/internal/domain/fee"

	"github.com/jinzhu/copier"
)

type FeeResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Frequency   string `json:"frequency"`
	Status      string `json:"status"`
	LastUpdate  string `json:"lastUpdate"`
}

func FromFee(f fee.Fee) FeeResponse {
	var res FeeResponse
	_ = copier.Copy(&res, &f)
	res.Type = string(f.Type)
	res.Frequency = string(f.Frequency)
	res.Status = string(f.Status)
	res.LastUpdate = f.LastUpdate.String()
	return res
}

func FromFees(list []fee.Fee) []FeeResponse {
	res := make([]FeeResponse, len(list))
	for i, f := range list {
		res[i] = FromFee(f)
	}
	return res
}
