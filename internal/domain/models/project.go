// internal/domain/models/project.go
package models

// Project categories shown in the works filter.
const (
	CategorySurreal     = "Surreal"
	CategorySocial      = "Social"
	CategoryFantasy     = "Fantasy"
	CategoryEnvironment = "Environment"
)

// Project is one portfolio work: its card metadata plus the ordered
// block sequence that makes up the detail page.
//
// Invariants:
//   - ID is assigned at creation and never reassigned.
//   - Slug is unique across all projects; the catalog repairs
//     collisions on save rather than rejecting them.
//   - Blocks order is the only render-order signal.
type Project struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Category     string         `json:"category"`
	ShortDesc    string         `json:"shortDesc"`
	Duration     string         `json:"duration"`
	Role         string         `json:"role"`
	Tools        []string       `json:"tools"`
	Year         string         `json:"year"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	Blocks       []ContentBlock `json:"blocks"`
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	if p.Tools != nil {
		out.Tools = make([]string, len(p.Tools))
		copy(out.Tools, p.Tools)
	}
	if p.Blocks != nil {
		out.Blocks = make([]ContentBlock, len(p.Blocks))
		for i, b := range p.Blocks {
			out.Blocks[i] = b.Clone()
		}
	}
	return out
}

// CloneProjects deep-copies a project list.
func CloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// SeedProjects returns the starter project list used when nothing has
// been persisted yet, so a fresh install renders a populated site.
func SeedProjects() []Project {
	return []Project{
		{
			ID:           "1",
			Title:        "The Silent Echo",
			Slug:         "silent-echo",
			Category:     CategorySurreal,
			ShortDesc:    "A visual exploration of repressed memories and the weight of silence.",
			Duration:     "02:45",
			Role:         "Art Direction, 3D Design, Animation",
			Tools:        []string{"Cinema 4D", "Octane Render", "After Effects"},
			Year:         "2024",
			ThumbnailURL: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&q=80&w=1280",
			Blocks: []ContentBlock{
				{
					ID:   "b1",
					Type: BlockVideo,
					Data: EmbedData(`<iframe src="https://player.vimeo.com/video/100000000" width="640" height="360" frameborder="0" allow="autoplay; fullscreen; picture-in-picture" allowfullscreen></iframe>`),
				},
				{
					ID:   "b2",
					Type: BlockConcept,
					Data: ConceptData{
						Background:     `이 프로젝트는 "말하지 못한 단어들"에 대한 명상에서 시작되었습니다.`,
						VisualStrategy: "부유하는 기하학적 형태와 액체 질감을 사용하여 불안정성을 시각화했습니다.",
						Message:        "침묵은 결코 비어있지 않습니다.",
					},
				},
				{
					ID:       "b3",
					Type:     BlockLargeImage,
					Data:     ImageData("https://images.unsplash.com/photo-1633167606207-d840b5070fc2?auto=format&fit=crop&q=80&w=1920"),
					Settings: &BlockSettings{Width: DefaultWidth},
				},
				{
					ID:       "b4",
					Type:     BlockText,
					Data:     TextData("Silence is never truly empty; it is filled with the weight of everything we choose not to say."),
					Settings: &BlockSettings{FontSize: "text-3xl", FontFamily: "font-serif", TextAlign: "text-center"},
				},
			},
		},
	}
}
