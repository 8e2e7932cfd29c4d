package settings

type SystemSettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type UpdateSystemSettingItem struct {
	Key   string `json:"key" binding:"required,min=1,max=100"`
	Value string `json:"value" binding:"required,max=500"`
}

type UpdateSystemSettingsRequest struct {
	Settings []UpdateSystemSettingItem `json:"settings" binding:"required,min=1,dive"`
}
