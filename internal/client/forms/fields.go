package forms

// Element ids of the server-rendered forms.
const (
	ProjectIDField          = "project-id"
	ProjectStatusField      = "project-status"
	ProjectUserIDField      = "project-user-id"
	ProjectUserSelectField  = "project-user-select"
	ProjectCanEditField     = "user_can_edit-checkbox"
	ProjectTitleField       = "project-title"
	ProjectDescriptionField = "project-description"
	ProjectDateField        = "project-date"
	ProjectResourcesField   = "project-resources"
	ProjectExperienceField  = "project-experience"
	SamplesRTField          = "has_samples_rt"
	SamplesCryoField        = "has_samples_cryo"

	EntryIDField          = "entry-id"
	EntryTypeField        = "entry-type"
	EntryProjectIDField   = "entry-project-id"
	EntryTitleField       = "entry-title"
	EntryDescriptionField = "entry-description"
	EntryDateField        = "entry-date"

	ResourceIDField = "resource-id"

	HourField = "hour_id"

	EntryDynamicForm = "dynamic-form"
	ResourceForm     = "resource-form"
)
