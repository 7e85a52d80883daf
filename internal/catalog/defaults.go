package catalog

// DefaultCategories is the built-in category list.
var DefaultCategories = []Category{
	{ID: "identity-system", Name: "Identity systems and visual language", Color: "#FF6B9D", Icon: IconSparkles},
	{ID: "digital-experiences", Name: "Digital experiences and interfaces", Color: "#60A5FA", Icon: IconMonitor},
	{ID: "digital-content", Name: "Digital content and community", Color: "#34D399", Icon: IconShare},
	{ID: "audiovisual-motion", Name: "Audiovisual and motion design", Color: "#C084FC", Icon: IconFilm},
	{ID: "spatial-design", Name: "Spatial design + digital layer", Color: "#FBBF24", Icon: IconMap},
	{ID: "playful-transmedia", Name: "Playful and transmedia experiences", Color: "#F97316", Icon: IconGamepad},
	{ID: "physical-media", Name: "Physical and printed media (base)", Color: "#8B5CF6", Icon: IconPackage},
	{ID: "experimental-tech", Name: "Experimental technologies", Color: "#EC4899", Icon: IconGlasses},
}

// DefaultComponents is the built-in component list.
var DefaultComponents = []Component{
	// Identity systems
	{ID: "brand-system", Name: "Brand system", Description: "Complete, consistent visual identity", BasePoints: 25, CategoryID: "identity-system", Icon: IconAward},
	{ID: "dynamic-identity", Name: "Dynamic visual identity", Description: "Adaptive, generative identity system", BasePoints: 30, CategoryID: "identity-system", Icon: IconLayers},
	{ID: "motion-identity", Name: "Motion identity", Description: "Animated brand identity", BasePoints: 28, CategoryID: "identity-system", Icon: IconSparkles},
	{ID: "iconography", Name: "Iconography / pictograms", Description: "Custom icon system", BasePoints: 15, CategoryID: "identity-system", Icon: IconGrid},
	{ID: "mascot", Name: "Mascot or character", Description: "Character design representing the brand", BasePoints: 20, CategoryID: "identity-system", Icon: IconSmile},
	{ID: "applied-illustration", Name: "Applied illustration", Description: "Illustration system aligned with the identity", BasePoints: 18, CategoryID: "identity-system", Icon: IconPalette},

	// Digital experiences
	{ID: "app", Name: "App", Description: "Complete mobile application", BasePoints: 30, CategoryID: "digital-experiences", Icon: IconSmartphone},
	{ID: "institutional-web", Name: "Institutional website", Description: "Multi-page corporate site", BasePoints: 25, CategoryID: "digital-experiences", Icon: IconGlobe},
	{ID: "interactive-landing", Name: "Interactive landing page", Description: "Landing page with interactions", BasePoints: 20, CategoryID: "digital-experiences", Icon: IconPointer},
	{ID: "ux-ui", Name: "UX / UI", Description: "User experience and interface design", BasePoints: 22, CategoryID: "digital-experiences", Icon: IconFigma},
	{ID: "clickable-prototype", Name: "Clickable prototype", Description: "Navigable functional prototype", BasePoints: 18, CategoryID: "digital-experiences", Icon: IconPointer},
	{ID: "microinteractions", Name: "Microinteractions", Description: "Interaction details in the UI", BasePoints: 12, CategoryID: "digital-experiences", Icon: IconSparkles},
	{ID: "gamified-experience", Name: "Gamified experience", Description: "Game mechanics in digital interfaces", BasePoints: 22, CategoryID: "digital-experiences", Icon: IconStar},

	// Digital content
	{ID: "content-strategy", Name: "Content strategy", Description: "Editorial and digital communication plan", BasePoints: 18, CategoryID: "digital-content", Icon: IconTarget},
	{ID: "interactive-social", Name: "Interactive social media", Description: "Participatory, dynamic social content", BasePoints: 15, CategoryID: "digital-content", Icon: IconMessage},
	{ID: "narrative-carousels", Name: "Narrative carousels", Description: "Visual series with storytelling", BasePoints: 10, CategoryID: "digital-content", Icon: IconGrid},
	{ID: "post-series", Name: "Post series", Description: "Cohesive pack of social content", BasePoints: 12, CategoryID: "digital-content", Icon: IconGrid},
	{ID: "participatory-content", Name: "Participatory content", Description: "Co-creation dynamics with the community", BasePoints: 16, CategoryID: "digital-content", Icon: IconUsers},
	{ID: "digital-storytelling", Name: "Digital storytelling", Description: "Cross-platform visual narrative", BasePoints: 20, CategoryID: "digital-content", Icon: IconBook},

	// Audiovisual and motion
	{ID: "motion-graphics", Name: "Motion graphics", Description: "Animation and moving graphics", BasePoints: 20, CategoryID: "audiovisual-motion", Icon: IconVideo},
	{ID: "system-animations", Name: "System animations", Description: "Animations for the brand identity", BasePoints: 18, CategoryID: "audiovisual-motion", Icon: IconWand},
	{ID: "reels", Name: "Reels", Description: "Short videos for social networks", BasePoints: 10, CategoryID: "audiovisual-motion", Icon: IconClapperboard},
	{ID: "institutional-video", Name: "Institutional video", Description: "Corporate audiovisual piece", BasePoints: 22, CategoryID: "audiovisual-motion", Icon: IconPlay},
	{ID: "motion-pack-streaming", Name: "Motion pack (streaming overlays)", Description: "Complete element pack for streaming", BasePoints: 28, CategoryID: "audiovisual-motion", Icon: IconRadio},
	{ID: "experimental-short", Name: "Experimental short film", Description: "Experimental audiovisual work", BasePoints: 32, CategoryID: "audiovisual-motion", Icon: IconFilm},

	// Spatial design
	{ID: "wayfinding", Name: "Wayfinding", Description: "Spatial orientation system", BasePoints: 18, CategoryID: "spatial-design", Icon: IconMapPin},
	{ID: "archigraphics", Name: "Archigraphics", Description: "Graphics applied to architecture", BasePoints: 20, CategoryID: "spatial-design", Icon: IconBuilding},
	{ID: "posters", Name: "Posters", Description: "Poster and signage system", BasePoints: 12, CategoryID: "spatial-design", Icon: IconFrame},
	{ID: "interactive-wayfinding", Name: "Interactive wayfinding", Description: "Orientation system with digital components", BasePoints: 25, CategoryID: "spatial-design", Icon: IconMonitor},
	{ID: "digital-layers", Name: "Digital layers (QR, context, tours)", Description: "Digital information over physical space", BasePoints: 16, CategoryID: "spatial-design", Icon: IconScan},

	// Playful and transmedia
	{ID: "gamification", Name: "Gamification", Description: "Play mechanics applied to experiences", BasePoints: 20, CategoryID: "playful-transmedia", Icon: IconTrophy},
	{ID: "advergame", Name: "Advergame", Description: "Branded advertising game", BasePoints: 30, CategoryID: "playful-transmedia", Icon: IconGamepad},
	{ID: "transmedia-narrative", Name: "Transmedia narrative", Description: "Story expanded across platforms", BasePoints: 28, CategoryID: "playful-transmedia", Icon: IconNetwork},
	{ID: "packaging-qr-ar", Name: "Packaging + QR / AR", Description: "Packaging with an augmented digital experience", BasePoints: 25, CategoryID: "playful-transmedia", Icon: IconPackage},
	{ID: "hybrid-experience", Name: "Hybrid physical-digital experience", Description: "Experience joining the real and digital worlds", BasePoints: 32, CategoryID: "playful-transmedia", Icon: IconBlend},

	// Physical media
	{ID: "packaging", Name: "Packaging", Description: "Container and packaging design", BasePoints: 18, CategoryID: "physical-media", Icon: IconPackage},
	{ID: "merch", Name: "Merch", Description: "Branded merchandise", BasePoints: 12, CategoryID: "physical-media", Icon: IconShoppingBag},
	{ID: "apparel", Name: "Apparel", Description: "Clothing and textile design", BasePoints: 15, CategoryID: "physical-media", Icon: IconShirt},
	{ID: "editorial-print", Name: "Editorial / brochures", Description: "Printed editorial material", BasePoints: 16, CategoryID: "physical-media", Icon: IconBook},
	{ID: "pop", Name: "POP", Description: "Point-of-purchase material", BasePoints: 10, CategoryID: "physical-media", Icon: IconStore},

	// Experimental technologies
	{ID: "ar-vr", Name: "AR / VR", Description: "Augmented or virtual reality experiences", BasePoints: 35, CategoryID: "experimental-tech", Icon: IconGlasses},
	{ID: "immersive-experiences", Name: "Immersive experiences", Description: "Enveloping multisensory experiences", BasePoints: 32, CategoryID: "experimental-tech", Icon: IconEye},
	{ID: "realtime-unity", Name: "Realtime (Unity or similar)", Description: "Real-time experience on a 3D engine", BasePoints: 40, CategoryID: "experimental-tech", Icon: IconZap},
	{ID: "blockchain", Name: "Blockchain", Description: "Decentralized apps and smart contracts", BasePoints: 30, CategoryID: "experimental-tech", Icon: IconBlocks},
	{ID: "nfts-collectibles", Name: "NFTs / digital collectibles", Description: "Non-fungible tokens and digital collections", BasePoints: 25, CategoryID: "experimental-tech", Icon: IconHexagon},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultCategories, DefaultComponents)
	if err != nil {
		panic("catalog: invalid built-in data: " + err.Error())
	}
	return c
}
