package domain

// Settings is the global configuration singleton read by the rate limiter and
// the registrar, and written by the admin surface.
type Settings struct {
	PromptTemplate      string `json:"promptTemplate"`
	PerUserDailyQuota   int    `json:"perUserDailyQuota"`
	GlobalLifetimeQuota int    `json:"globalLifetimeQuota"`
	NoticeMessage       string `json:"noticeMessage"`
}

// SettingsPatch is a partial settings update. Nil fields keep the current
// value. Quota fields are clamped to a minimum of 1 when applied, never
// rejected.
type SettingsPatch struct {
	PromptTemplate      *string `json:"promptTemplate"`
	PerUserDailyQuota   *int    `json:"perUserDailyQuota"`
	GlobalLifetimeQuota *int    `json:"globalLifetimeQuota"`
	NoticeMessage       *string `json:"noticeMessage"`
}
