package dto

// ListParams defines the shared pagination query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ListSongwritersParams defines query parameters for listing songwriters.
type ListSongwritersParams struct {
	ListParams
	Status string `form:"status" binding:"omitempty,oneof=active inactive deceased"`
	Search string `form:"search" binding:"omitempty,max=255"`
}

// ListWorksParams defines query parameters for listing works.
type ListWorksParams struct {
	ListParams
	RegistrationStatus string `form:"registrationStatus" binding:"omitempty,oneof=draft pending registered published archived"`
	Genre              string `form:"genre" binding:"omitempty,max=100"`
	Language           string `form:"language" binding:"omitempty,max=10"`
	Search             string `form:"search" binding:"omitempty,max=500"`
}

// ListRecordingsParams defines query parameters for listing recordings.
// Deleted recordings are excluded unless includeDeleted is set.
type ListRecordingsParams struct {
	ListParams
	WorkID         string `form:"workID" binding:"omitempty,uuid"`
	Status         string `form:"status" binding:"omitempty,oneof=active archived deleted"`
	RecordingType  string `form:"recordingType" binding:"omitempty,oneof=studio live demo remix remaster alternate acoustic"`
	IncludeDeleted bool   `form:"includeDeleted"`
	Search         string `form:"search" binding:"omitempty,max=500"`
}

// SearchParams defines query parameters for the per-tenant search
// endpoints.
type SearchParams struct {
	Query string `form:"q" binding:"required,min=1,max=500"`
	Limit int    `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
}

// DuplicateScanParams defines query parameters for duplicate scans.
type DuplicateScanParams struct {
	Threshold float64 `form:"threshold" binding:"omitempty,gt=0,lte=1"`
}
