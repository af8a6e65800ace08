package pdf

import (
	"fmt"
	"time"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/internal/imaging"
	"assessment_report_backend/platform/logger"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Bounding boxes (pixels) applied before embedding, keeping the output
// document size reasonable for photo-heavy submissions.
const (
	photoMaxWidth  = 1000
	photoMaxHeight = 750
	sigMaxWidth    = 500
	sigMaxHeight   = 160
)

// Generator builds site assessment PDF documents. One instance is safe for
// concurrent use: every Generate call allocates its own document.
type Generator struct {
	theme  Theme
	lists  *domain.Checklists
	logo   []byte
	footer string
	log    *logger.Logger
}

// New creates a document generator. logo may be nil, in which case the
// header degrades to a text-only cell.
func New(theme Theme, lists *domain.Checklists, logo []byte, footerText string, log *logger.Logger) *Generator {
	return &Generator{theme: theme, lists: lists, logo: logo, footer: footerText, log: log}
}

// Generate renders the full document for one normalized record plus its
// flattened gallery photo list and returns the PDF bytes.
func (g *Generator) Generate(rec domain.Record, items []domain.DefectItem, photos []string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithBottomMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current}",
			Place:   props.RightBottom,
			Size:    8,
			Color:   g.theme.Secondary,
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(g.buildFooter()); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	m.AddRows(g.buildHeader(rec)...)
	m.AddRows(row.New(4))

	m.AddRows(g.buildProjectDetails(rec)...)
	m.AddRows(row.New(4))
	m.AddRows(g.buildSiteCounts(rec)...)
	m.AddRows(row.New(4))
	m.AddRows(g.buildCleaningScope(rec)...)
	m.AddRows(row.New(4))
	m.AddRows(g.buildSpecialConsiderations(rec)...)
	m.AddRows(row.New(4))
	m.AddRows(g.buildHealthSafety(rec)...)
	m.AddRows(row.New(4))
	m.AddRows(g.buildStaffing(rec)...)
	m.AddRows(row.New(4))
	m.AddRows(g.buildNotes(rec)...)
	m.AddRows(row.New(4))
	m.AddRows(g.buildDefectItems(items)...)
	m.AddRows(row.New(6))
	m.AddRows(g.buildSignatures(rec)...)

	// Photo gallery starts on its own page.
	m.AddPages(page.New().Add(g.buildGallery(photos)...))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// ── Header ──────────────────────────────────────────────────────────────

func (g *Generator) buildHeader(rec domain.Record) []core.Row {
	title := fmt.Sprintf("Site Assessment Form - %s (%s)",
		rec.GetDefault(domain.FieldProjectName, "N/A"),
		time.Now().Format("2006-01-02"))

	titleCol := col.New(9).Add(
		text.New(title, props.Text{
			Size:  g.theme.TitleSize,
			Style: fontstyle.Bold,
			Color: g.theme.SectionTitle,
			Top:   3,
		}),
	)

	logoCol := col.New(3)
	if len(g.logo) > 0 {
		logoCol.Add(image.NewFromBytes(g.logo, extension.Png, props.Rect{
			Percent: 80,
			Center:  true,
		}))
	}

	return []core.Row{row.New(16).Add(titleCol, logoCol)}
}

// ── Section helpers ─────────────────────────────────────────────────────

func (g *Generator) sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Size:  g.theme.TitleSize - 2,
			Style: fontstyle.Bold,
			Color: g.theme.SectionTitle,
			Top:   1,
		})),
	)
}

func (g *Generator) gridCell() *props.Cell {
	return &props.Cell{
		BorderType:  border.Full,
		BorderColor: g.theme.GridLine,
	}
}

func (g *Generator) filledGridCell(fill *props.Color) *props.Cell {
	return &props.Cell{
		BorderType:      border.Full,
		BorderColor:     g.theme.GridLine,
		BackgroundColor: fill,
	}
}

func (g *Generator) labelText(s string) core.Component {
	return text.New(s, props.Text{
		Size:  g.theme.LabelSize - 1,
		Style: fontstyle.Bold,
		Color: g.theme.Primary,
		Left:  2,
		Top:   1.5,
	})
}

func (g *Generator) valueText(s string) core.Component {
	return text.New(s, props.Text{
		Size:  g.theme.BodySize - 1,
		Color: g.theme.Primary,
		Left:  2,
		Top:   1.5,
	})
}

// pairRow lays out two label/value pairs in one bordered row.
func (g *Generator) pairRow(label1, value1, label2, value2 string) core.Row {
	return row.New(8).Add(
		col.New(2).Add(g.labelText(label1)).WithStyle(g.filledGridCell(g.theme.LabelFill)),
		col.New(4).Add(g.valueText(value1)).WithStyle(g.gridCell()),
		col.New(2).Add(g.labelText(label2)).WithStyle(g.filledGridCell(g.theme.LabelFill)),
		col.New(4).Add(g.valueText(value2)).WithStyle(g.gridCell()),
	)
}

// questionRow lays out a wide question with its resolved answer.
func (g *Generator) questionRow(question, answer string, h float64) core.Row {
	return row.New(h).Add(
		col.New(7).Add(g.labelText(question)).WithStyle(g.gridCell()),
		col.New(5).Add(g.valueText(answer)).WithStyle(g.gridCell()),
	)
}

// ── Block 1: Project & Client Details ───────────────────────────────────

func (g *Generator) buildProjectDetails(rec domain.Record) []core.Row {
	return []core.Row{
		g.sectionTitle("1. Project & Client Details"),
		g.pairRow(
			"Client Name:", rec.GetDefault(domain.FieldClientName, "N/A"),
			"Project Name:", rec.GetDefault(domain.FieldProjectName, "N/A"),
		),
		g.pairRow(
			"Site Address:", rec.GetDefault(domain.FieldSiteAddress, "N/A"),
			"Date of Visit:", rec.GetDefault(domain.FieldDateOfVisit, "N/A"),
		),
		g.pairRow(
			"Key Person:", rec.GetDefault(domain.FieldKeyPersonName, "N/A"),
			"Contact Number:", rec.GetDefault("contact_number", "N/A"),
		),
	}
}

// ── Block 2: Site Count & Current Operations ────────────────────────────

var facilityCounts = []struct {
	label string
	field string
}{
	{"Ground Parking:", "facility_ground_parking"},
	{"Male Washroom:", "facility_washroom_male"},
	{"Basement:", "facility_basement"},
	{"Female Washroom:", "facility_washroom_female"},
	{"Podium:", "facility_podium"},
	{"Changing Room:", "facility_changing_room"},
	{"Gym Room:", "facility_gym_room"},
	{"Kids Place:", "facility_play_kids_place"},
	{"Swimming Pool:", "facility_swimming_pool"},
	{"Garbage Room:", "facility_garbage_room"},
	{"Floor Chute Room:", "facility_floor_chute_room"},
	{"Staircase:", "facility_staircase"},
	{"Floor Service Room:", "facility_floor_service_room"},
	{"Cleaner Total:", "facility_cleaner_count"},
}

func (g *Generator) buildSiteCounts(rec domain.Record) []core.Row {
	rows := []core.Row{
		g.sectionTitle("2. Site Count & Current Operations"),
		row.New(8).Add(
			col.New(2).Add(g.labelText("Room Count (General):")).WithStyle(g.filledGridCell(g.theme.CountsFill)),
			col.New(4).Add(g.valueText(rec.GetDefault("room_count", "N/A"))).WithStyle(g.filledGridCell(g.theme.CountsFill)),
			col.New(2).Add(g.labelText("Current Team:")).WithStyle(g.filledGridCell(g.theme.CountsFill)),
			col.New(4).Add(g.valueText(rec.GetDefault("current_team_desc", "N/A"))).WithStyle(g.filledGridCell(g.theme.CountsFill)),
		),
		row.New(8).Add(
			col.New(2).Add(g.labelText("Lift Count (Total):")).WithStyle(g.filledGridCell(g.theme.CountsFill)),
			col.New(4).Add(g.valueText(rec.GetDefault("lift_count_total", "N/A"))).WithStyle(g.filledGridCell(g.theme.CountsFill)),
			col.New(2).Add(g.labelText("Current Team Size:")).WithStyle(g.filledGridCell(g.theme.CountsFill)),
			col.New(4).Add(g.valueText(rec.GetDefault("current_team_size", "N/A"))).WithStyle(g.filledGridCell(g.theme.CountsFill)),
		),
		row.New(7).Add(
			col.New(12).Add(g.labelText("2B. Detailed Facility Area Counts")),
		),
	}

	// Facility counts grid, two label/value pairs per row, default "0".
	for i := 0; i+1 < len(facilityCounts); i += 2 {
		left, right := facilityCounts[i], facilityCounts[i+1]
		rows = append(rows, g.pairRow(
			left.label, rec.GetDefault(left.field, "0"),
			right.label, rec.GetDefault(right.field, "0"),
		))
	}

	return rows
}

// ── Block 3: Cleaning Requirements & Scope ──────────────────────────────

func (g *Generator) buildCleaningScope(rec domain.Record) []core.Row {
	routineScope := domain.ChecklistLine(rec, g.lists.Scope)
	frequency := domain.ChecklistLine(rec, g.lists.Frequency)
	wasteDisposal := domain.WasteLine(rec, g.lists.Waste)

	deepCleanRequired := domain.AssumeYes(rec.Get("deep_cleaning_required"))
	deepCleanDetails := domain.DetailedChoiceLine(
		deepCleanRequired, "Areas", rec.Get("deep_clean_areas"), "Not specified")

	scopeRow := func(label, value string) core.Row {
		return row.New(10).Add(
			col.New(3).Add(g.labelText(label)).WithStyle(g.filledGridCell(g.theme.ScopeFill)),
			col.New(9).Add(g.valueText(value)).WithStyle(g.filledGridCell(g.theme.ScopeFill)),
		)
	}

	return []core.Row{
		g.sectionTitle("3. Cleaning Requirements & Scope"),
		scopeRow("Routine Scope (Areas):", routineScope),
		scopeRow("Frequency:", frequency),
		scopeRow("Deep Cleaning Required:", deepCleanDetails),
		scopeRow("Waste Disposal:", wasteDisposal),
	}
}

// ── Block 4: Special Considerations ─────────────────────────────────────

func (g *Generator) buildSpecialConsiderations(rec domain.Record) []core.Row {
	return []core.Row{
		g.sectionTitle("4. Special Considerations"),
		g.questionRow(
			"Are there any areas with restricted access? (Describe area and access requirements)",
			rec.GetDefault("restricted_access", "N/A"), 10),
		g.questionRow(
			"Pest control needed? (Specify type and location)",
			rec.GetDefault("pest_control", "N/A"), 10),
	}
}

// ── Block 5: Health & Safety ────────────────────────────────────────────

func (g *Generator) buildHealthSafety(rec domain.Record) []core.Row {
	riskChoice := domain.ChoiceLine(domain.AssumeYes(rec.Get("risk_assessment_required")))
	fireChoice := domain.ChoiceLine(domain.AssumeYes(rec.Get("fire_exits_reviewed")))

	return []core.Row{
		g.sectionTitle("5. Health & Safety"),
		g.questionRow("PPE requirements:",
			rec.GetDefault("ppe_requirements", "___________________________"), 8),
		g.questionRow("Risk assessments required:", riskChoice, 8),
		g.questionRow("Fire exits and evacuation points reviewed?", fireChoice, 8),
	}
}

// ── Block 6: Staffing Requirements ──────────────────────────────────────

func (g *Generator) buildStaffing(rec domain.Record) []core.Row {
	// Weekend work uses the opposite resolution bias from the other
	// tri-state fields; see domain.AssumeNo.
	weekendChoice := domain.ChoiceLine(domain.AssumeNo(rec.Get("weekend_work")))

	return []core.Row{
		g.sectionTitle("6. Staffing Requirements"),
		g.questionRow("Number of staff needed per shift:",
			rec.GetDefault("staff_needed", "_______"), 8),
		g.questionRow("Shift times:",
			rec.GetDefault("shift_times", "___________________________"), 8),
		g.questionRow("Weekend or out-of-hours' work?", weekendChoice, 8),
	}
}

// ── Block 7: Notes and Observation ──────────────────────────────────────

func (g *Generator) buildNotes(rec domain.Record) []core.Row {
	return []core.Row{
		g.sectionTitle("7. Notes and Observation"),
		row.New(30).Add(
			col.New(12).Add(g.valueText(rec.Get("notes_and_observations"))).WithStyle(g.gridCell()),
		),
	}
}

// ── Block 8: Defect Observations ────────────────────────────────────────

func (g *Generator) buildDefectItems(items []domain.DefectItem) []core.Row {
	rows := []core.Row{g.sectionTitle("8. Defect Observations")}

	if len(items) == 0 {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(g.valueText("No defects were recorded during this assessment.")),
		))
		return rows
	}

	for i, item := range items {
		rows = append(rows, row.New(7).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("Item %d: %s", i+1, orNA(item.Location)),
				props.Text{
					Size:  g.theme.LabelSize,
					Style: fontstyle.Bold,
					Color: g.theme.Primary,
					Left:  2,
					Top:   1,
				},
			)).WithStyle(g.filledGridCell(g.theme.LabelFill)),
		))
		rows = append(rows,
			g.pairRow("Category:", orNA(item.Category), "Priority:", orNA(item.Priority)),
			g.questionRow("Description:", orNA(item.Description), 10),
			g.questionRow("Recommendation:", orNA(item.Recommendation), 10),
		)

		for j, photo := range item.Photos {
			rows = append(rows, g.photoRow(photo, fmt.Sprintf("Item %d Photo %d", i+1, j+1)))
		}
		rows = append(rows, row.New(3))
	}

	return rows
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// photoRow renders one inline photo, degrading to placeholder text when the
// payload is absent or undecodable.
func (g *Generator) photoRow(encoded, label string) core.Row {
	img, err := imaging.DecodeBounded(encoded, photoMaxWidth, photoMaxHeight)
	if err != nil {
		placeholder := label + " N/A"
		if err != imaging.ErrNoData {
			g.log.ImageDecodeError(label, err)
			placeholder = "Image Load Error"
		}
		return row.New(6).Add(
			col.New(12).Add(text.New(placeholder, props.Text{
				Size:  8,
				Color: g.theme.Secondary,
				Align: align.Center,
			})),
		)
	}

	return row.New(g.theme.GalleryRowH).Add(
		col.New(3),
		col.New(6).Add(image.NewFromBytes(img.Data, extensionFor(img), props.Rect{
			Percent: 95,
			Center:  true,
		})).WithStyle(g.gridCell()),
		col.New(3),
	)
}

// ── Block 9: Signatures ─────────────────────────────────────────────────

func (g *Generator) buildSignatures(rec domain.Record) []core.Row {
	assessorCol := g.signatureCol(rec.Get(domain.FieldTechSignature), "Assessor")
	contactCol := g.signatureCol(rec.Get(domain.FieldContactSignature), "Key Contact")

	assessorName := rec.GetDefault(domain.FieldAssessorName, "N/A")
	contactName := rec.GetEither("N/A", domain.FieldContactName, domain.FieldKeyPersonName)

	return []core.Row{
		g.sectionTitle("9. Signatures"),
		row.New(20).Add(assessorCol, contactCol),
		row.New(2).Add(
			col.New(5).WithStyle(&props.Cell{BorderType: border.Bottom, BorderColor: g.theme.Primary}),
			col.New(1),
			col.New(5).WithStyle(&props.Cell{BorderType: border.Bottom, BorderColor: g.theme.Primary}),
			col.New(1),
		),
		row.New(6).Add(
			col.New(6).Add(g.labelText("Assessor: "+assessorName)),
			col.New(6).Add(g.labelText("Key Contact: "+contactName)),
		),
	}
}

func (g *Generator) signatureCol(encoded, name string) core.Col {
	img, err := imaging.DecodeBounded(encoded, sigMaxWidth, sigMaxHeight)
	if err != nil {
		placeholder := "Unsigned: " + name
		if err != imaging.ErrNoData {
			g.log.ImageDecodeError(name+" signature", err)
			placeholder = "Signature Failed: " + name
		}
		return col.New(6).Add(text.New(placeholder, props.Text{
			Size:  g.theme.BodySize,
			Color: g.theme.Secondary,
			Top:   8,
		}))
	}

	return col.New(6).Add(image.NewFromBytes(img.Data, extensionFor(img), props.Rect{
		Percent: 70,
	}))
}

// ── Block 10: Photo gallery ─────────────────────────────────────────────

func (g *Generator) buildGallery(photos []string) []core.Row {
	rows := []core.Row{g.sectionTitle("10. Site Photos & Diagrams")}

	if len(photos) == 0 {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(g.valueText("No photos or site diagrams were provided for this assessment.")),
		))
		return rows
	}

	rows = append(rows, row.New(7).Add(
		col.New(12).Add(g.labelText("Visual Evidence")).WithStyle(g.filledGridCell(g.theme.GalleryFill)),
	))

	// Two photos per row; an incomplete trailing row is padded with an
	// empty cell.
	for i := 0; i < len(photos); i += 2 {
		cols := []core.Col{g.galleryCol(photos[i], i+1)}
		if i+1 < len(photos) {
			cols = append(cols, g.galleryCol(photos[i+1], i+2))
		} else {
			cols = append(cols, col.New(6))
		}
		rows = append(rows, row.New(g.theme.GalleryRowH).Add(cols...))
	}

	return rows
}

func (g *Generator) galleryCol(encoded string, index int) core.Col {
	img, err := imaging.DecodeBounded(encoded, photoMaxWidth, photoMaxHeight)
	if err != nil {
		placeholder := fmt.Sprintf("Photo %d N/A", index)
		if err != imaging.ErrNoData {
			g.log.ImageDecodeError(fmt.Sprintf("gallery photo %d", index), err)
			placeholder = "Image Load Error"
		}
		return col.New(6).Add(text.New(placeholder, props.Text{
			Size:  8,
			Color: g.theme.Secondary,
			Align: align.Center,
			Top:   g.theme.GalleryRowH / 2,
		})).WithStyle(g.gridCell())
	}

	return col.New(6).Add(image.NewFromBytes(img.Data, extensionFor(img), props.Rect{
		Percent: 95,
		Center:  true,
	})).WithStyle(g.gridCell())
}

// ── Footer ──────────────────────────────────────────────────────────────

func (g *Generator) buildFooter() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(g.footer, props.Text{
			Size:  g.theme.FooterSize - 1,
			Color: g.theme.Secondary,
			Align: align.Center,
			Top:   3,
		})),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: g.theme.GridLine,
	})
}

func extensionFor(img *imaging.Image) extension.Type {
	if img.Format == "png" {
		return extension.Png
	}
	return extension.Jpg
}
