package change_stage

// ChangeStageRequest HTTP request model, stage 1..4
type ChangeStageRequest struct {
	Stage int `json:"stage"`
}
