package request

type PurchasePointsRequest struct {
	PackageID int `json:"package_id" binding:"required,gt=0"`
}

type RedeemPointsRequest struct {
	Points int64 `json:"points" binding:"required,gt=0"`
}
