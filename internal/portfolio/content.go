package portfolio

var (
	profile = Profile{
		Name:     "Hannah Genneath Natheer",
		Initials: "HN",
		Headline: `Software Engineer & MSc Data Science student focused on **machine learning**,
**weather forecasting**, and **LLM distillation**. I build practical, explainable AI systems.`,
		About: `I'm an MSc Data Science student at **Cardiff Metropolitan University** (graduating July 2025),
with a BSc in Software Engineering. I enjoy building data products that blend
rigorous analysis with human‑friendly design. My recent work spans regional
weather forecasting, LLM knowledge distillation, and smart‑home sensing.`,
		CVPath:       "/Hannah_Natheer_CV.pdf",
		Email:        "hannahnatheer9@gmail.com",
		GitHub:       "https://github.com/hannahgnatheer",
		LinkedIn:     "https://www.linkedin.com/in/hanagnat/",
		ContactTitle: "Let's collaborate",
		ContactBlurb: "Open to Data Science, ML, and AI roles in the UK. Available for research collaborations.",
	}

	skills = []string{
		"Python", "Pandas", "scikit-learn", "XGBoost", "LightGBM", "TensorFlow", "PyTorch",
		"SQL", "GeoPandas", "Matplotlib", "Plotly", "Power BI", "Tableau",
		"Optuna/GridSearchCV", "SHAP/LIME", "Git/GitHub", "Azure/AWS", "RAG", "LLMs",
	}

	projects = []Project{
		{
			Title: "Machine Learning-Based Weather Forecasting in South Wales",
			Tags:  []string{"ML", "Multi‑label Classification", "XGBoost", "EDA", "Explainability"},
			Year:  "2025",
			Description: `Regional weather forecasting using multi‑label models (LogReg, RF, GB, XGBoost, LGBM, SVM).
XGBoost achieved F1=0.8085, Precision=0.9965, Accuracy=98.65%. Pipeline includes feature engineering,
IQR outlier handling, correlation‑driven selection, SHAP/LIME/Anchors explainability.`,
			Links: &Links{
				Code:  "https://1drv.ms/u/c/a99e4c2abfccd44b/EQAqhPDcalFFtQB-8wdwP-IBX950d5aVMXSUMDqQ4ZGKOg?e=9wW7h8",
				Paper: "https://1drv.ms/b/c/a99e4c2abfccd44b/Eevp4BdY9qBKtOtrev5xp7YBsJnrVBQ71on3pg6K2cQOWQ?e=SaumOj",
				Demo:  DemoPlaceholder,
			},
			Metrics: []Metric{
				{Label: "F1 (macro)", Value: "0.8085"},
				{Label: "Precision", Value: "0.9965"},
				{Label: "Accuracy", Value: "98.65%"},
			},
			Icon: "cloud-sun",
		},
		{
			Title: "Knowledge Distillation for Low‑Parameter LLMs (NLP)",
			Tags:  []string{"LLM", "Distillation", "Summarization", "Mistral 7B", "LLaMA 3.1 8B"},
			Year:  "2025",
			Description: `Experimental framework distilling summarization/understanding abilities from larger teachers
into compact students with unified evaluation (BLEU, ROUGE, METEOR, BERTScore).`,
			Links:   &Links{Code: "https://github.com/your-username/llm-distill", Demo: DemoPlaceholder},
			Metrics: []Metric{{Label: "Params", Value: "≤8B"}, {Label: "Benchmarks", Value: "Multi‑task"}},
			Icon:    "cpu",
		},
		{
			Title: "Smart‑Home Weather Monitoring & Multi‑Label Prediction",
			Tags:  []string{"IoT", "ESP32/RPi", "Sensors", "Multi‑Label", "SHAP"},
			Year:  "2025",
			Description: `End‑to‑end pipeline for low‑cost sensors (temp, humidity, pressure, UV, wind) with multi‑label
classifiers and feature importance to minimize sensor set while preserving accuracy.`,
			Links:   &Links{Code: "https://github.com/your-username/smart-weather", Demo: DemoPlaceholder},
			Metrics: []Metric{{Label: "Latency", Value: "Edge"}, {Label: "Modalities", Value: "10+"}},
			Icon:    "blocks",
		},
	}

	experience = []Experience{
		{
			Role:   "Operations Assistant",
			Org:    "WJEC",
			Period: "2025 — Present",
			Bullets: []string{
				"Administrative & data operations across assessments.",
				"Process optimization and quality tracking.",
			},
		},
		{
			Role:   "Global/International Student Ambassador & Student Coach",
			Org:    "Cardiff Metropolitan University",
			Period: "2024 — 2025",
			Bullets: []string{
				"Advised students; organized events and onboarding.",
				"Data‑informed outreach and support initiatives.",
			},
		},
	}

	education = []Education{
		{Title: "MSc Data Science", Org: "Cardiff Metropolitan University", Period: "2024 — 2025 (expected Jul)"},
		{Title: "BSc(Hons) Software Engineering", Org: "Cardiff Metropolitan University", Period: "2023"},
		{Title: "Pearson BTEC HND in Computing", Org: "Esoft Metro Campus", Period: "2022"},
	}

	badges = []string{
		"MSc Data Science Student of the Year (Cardiff Met)",
		"Geo analytics • ML interpretability • RAG systems",
		"Interested in roles at Samsung & KIA",
	}
)

// Default returns the page content. Every call returns fresh slices, so the
// package literals stay read-only no matter what callers do with the result.
func Default() Content {
	return Content{
		Profile:    profile,
		Skills:     clone(skills),
		Badges:     clone(badges),
		Projects:   cloneProjects(projects),
		Experience: cloneExperience(experience),
		Education:  clone(education),
	}
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneProjects(in []Project) []Project {
	out := clone(in)
	for i := range out {
		out[i].Tags = clone(out[i].Tags)
		out[i].Metrics = clone(out[i].Metrics)
		if out[i].Links != nil {
			l := *out[i].Links
			out[i].Links = &l
		}
	}
	return out
}

func cloneExperience(in []Experience) []Experience {
	out := clone(in)
	for i := range out {
		out[i].Bullets = clone(out[i].Bullets)
	}
	return out
}
