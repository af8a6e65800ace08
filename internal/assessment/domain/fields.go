package domain

// Well-known field names of the submission payload.
const (
	FieldProjectName         = "project_name"
	FieldClientName          = "client_name"
	FieldSiteAddress         = "site_address"
	FieldDateOfVisit         = "date_of_visit"
	FieldAssessorName        = "assessor_name"
	FieldContactName         = "contact_name"
	FieldKeyPersonName       = "key_person_name"
	FieldDefectItems         = "defect_items"
	FieldInspectionPhoto     = "inspection_photo_data"
	FieldInspectionPhotoMime = "inspection_photo_mime"
	FieldInspectorSignature  = "inspector_signature_data"
	FieldTechSignature       = "tech_signature"
	FieldContactSignature    = "contact_signature"
)

// CanonicalFields is the fixed, ordered set of scalar fields recognized for
// the flat spreadsheet export. Binary payload fields are intentionally not
// part of this list.
var CanonicalFields = []string{
	// Project & client details
	"client_name",
	"project_name",
	"site_address",
	"date_of_visit",
	"key_person_name",
	"contact_number",

	// Site count & current operations
	"room_count",
	"lift_count_total",
	"current_team_desc",
	"current_team_size",
	"facility_ground_parking",
	"facility_washroom_male",
	"facility_basement",
	"facility_washroom_female",
	"facility_podium",
	"facility_changing_room",
	"facility_gym_room",
	"facility_play_kids_place",
	"facility_swimming_pool",
	"facility_garbage_room",
	"facility_floor_chute_room",
	"facility_staircase",
	"facility_floor_service_room",
	"facility_cleaner_count",

	// Cleaning requirements & scope
	"deep_clean_areas",
	"waste_general",
	"waste_recycling",
	"waste_hazardous",
	"waste_hazardous_details",

	// Special considerations
	"restricted_access",
	"pest_control",

	// Health & safety
	"ppe_requirements",
	"risk_assessment_required",
	"fire_exits_reviewed",

	// Staffing requirements
	"staff_needed",
	"shift_times",
	"weekend_work",

	// Notes
	"notes_and_observations",

	// Signatories
	"assessor_name",
	"contact_name",
}

// FreeTextFields lists the fields that accept arbitrary user prose and are
// HTML-stripped during normalization.
var FreeTextFields = []string{
	"current_team_desc",
	"deep_clean_areas",
	"waste_hazardous_details",
	"restricted_access",
	"pest_control",
	"ppe_requirements",
	"shift_times",
	"notes_and_observations",
}

// BinaryFields lists every field that may carry a Base64 payload. These are
// stripped from the scalar set before any spreadsheet row is constructed.
var BinaryFields = []string{
	FieldInspectionPhoto,
	FieldInspectionPhotoMime,
	FieldInspectorSignature,
	FieldTechSignature,
	FieldContactSignature,
}
