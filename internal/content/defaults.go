package content

// Default returns the built-in portfolio.
func Default() *Portfolio {
	return &Portfolio{
		Hero: Hero{
			Name:    "SYED MUHAMMAD MUDASSIR",
			Tagline: "AI_ENGINEER // GENERATIVE_SYSTEMS",
			Summary: "Building generative models, vision pipelines and data systems that turn research into tools.",
		},
		Projects: []Project{
			{
				Title:           "Synthetic Face Generation for Drug Abuse Detection",
				Description:     "Co-developed an AI system using BLIP, CLIP, and OpenCV for generating intelligent prompts from images to detect drug abuse indicators.",
				LongDescription: "This research project focuses on the intersection of generative AI and medical diagnostics. By leveraging SDXL and custom LoRA weights, we synthesize facial datasets that exhibit specific physiological markers associated with long-term drug abuse. The pipeline involves automated prompt engineering via BLIP-2 and CLIP to ensure high-fidelity anatomical accuracy for clinical study support.",
				Tags:            []string{"SDXL", "LoRA", "PyTorch", "OpenCV"},
				Date:            "2025 - Present",
			},
			{
				Title:           "Environmental Data Processing",
				Description:     "Built a system to analyze air quality and Sentinel-2 imagery using MySQL, FFT, and image processing for pollution detection.",
				LongDescription: "Utilizing satellite data from the Sentinel-2 mission, this project implements Fast Fourier Transforms (FFT) to analyze spectral signatures of atmospheric pollutants. The system integrates a robust MySQL backend to store temporal environmental data, visualized through a custom-built GUI that allows researchers to identify pollution hotspots in real-time.",
				Tags:            []string{"Python", "MySQL", "FFT", "Image Processing"},
				Date:            "2024 - 2025",
			},
			{
				Title:           "Sketch-to-Image Generation",
				Description:     "A diffusion-based pipeline that converts hand-drawn sketches into realistic images, deployed as an interactive Gradio app.",
				LongDescription: "Developed during the peak of the diffusion model era, this project uses ControlNet architectures to provide structural guidance to pre-trained Stable Diffusion models. Users can draw simple line art which the system interprets and textures into high-resolution cinematic renders. The application was optimized for low-latency inference on consumer-grade GPUs.",
				Tags:            []string{"Diffusion Models", "Gradio", "Generative AI"},
				Date:            "2022",
			},
			{
				Title:           "Data Visualization using Tableau",
				Description:     "Analyzed complex datasets and created informative interactive dashboards for data-driven organizational insights.",
				LongDescription: "Focused on business intelligence, this project involved cleaning and aggregating large-scale organizational datasets using SQL. The final product was a suite of interactive Tableau dashboards that enabled stakeholders to drill down into KPIs, resulting in a 15% increase in operational efficiency through better resource allocation.",
				Tags:            []string{"Tableau", "Data Analysis", "SQL"},
				Date:            "2021",
			},
		},
		Skills: []SkillCategory{
			{
				Category: "AI & ML",
				Skills: []Skill{
					{"Stable Diffusion", "Image synthesis & generative art models."},
					{"PyTorch", "Developing complex neural architectures."},
					{"LLMs", "Prompt engineering & RAG pipelines."},
					{"Generative AI", "Synthetic data & content generation."},
					{"Computer Vision", "Object detection & facial biometrics."},
				},
			},
			{
				Category: "Programming",
				Skills: []Skill{
					{"Python", "Primary logic for AI/ML development."},
					{"C++", "Performance-critical system components."},
					{"JavaScript", "Interactive frontend & biometric UI."},
					{"SQL", "Relational database architecture."},
					{"Java", "Enterprise-grade backend logic."},
				},
			},
			{
				Category: "Data Tools",
				Skills: []Skill{
					{"Tableau", "Interactive business intelligence."},
					{"Power BI", "Advanced KPI reporting & dashboarding."},
					{"Excel Pivot", "Quick data aggregation & analysis."},
					{"Pandas", "Data manipulation & preprocessing."},
					{"NumPy", "Scientific computing & matrix operations."},
				},
			},
		},
		Experiences: []Experience{
			{
				Role:    "Database Developer Intern",
				Company: "Naveena Group",
				Period:  "Jan 2021 - Feb 2021",
				Description: []string{
					"Wrote complex Oracle queries to retrieve data efficiently.",
					"Designed and developed user-friendly forms for enhanced data entry.",
				},
			},
			{
				Role:    "Aurora Student Ambassador",
				Company: "Université Paris-Est Créteil",
				Period:  "2024 - Present",
				Description: []string{
					"Representing UPEC in the prestigious Aurora European University Alliance.",
					"Collaborating on international projects with peers across Europe.",
				},
			},
		},
		Contact: Contact{
			Email:    "mudassirfrance@gmail.com",
			LinkedIn: "https://www.linkedin.com/in/syed-muhammad-mudassir-b81314211/",
		},
	}
}
