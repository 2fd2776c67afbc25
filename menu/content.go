package menu

import "novonexbot/session"

const (
	softwareHotline = "077 069 1283"
	digitalHotline  = "075 339 4278"
	companyEmail    = "novonexlk@gmail.com"

	softwareName = "NovoNex Software Solutions"
	digitalName  = "NovoNex Digital Works"
)

var softwarePages = []Page{
	{
		Title: "🏢 NovoNex Software Solutions – Page 1/3",
		Services: []Service{
			{ID: "service1", Label: "1️⃣ Custom Software Development"},
			{ID: "service2", Label: "2️⃣ Web Application Development"},
			{ID: "service3", Label: "3️⃣ Website Development"},
			{ID: "service4", Label: "4️⃣ E-Commerce Solutions"},
		},
	},
	{
		Title: "🏢 NovoNex Software Solutions – Page 2/3",
		Services: []Service{
			{ID: "service5", Label: "5️⃣ Mobile Application Development"},
			{ID: "service6", Label: "6️⃣ UI / UX Design"},
			{ID: "service7", Label: "7️⃣ AI & Automation Solutions"},
			{ID: "service8", Label: "8️⃣ System Integration & API Development"},
		},
	},
	{
		Title: "🏢 NovoNex Software Solutions – Page 3/3",
		Services: []Service{
			{ID: "service9", Label: "9️⃣ Cloud & Hosting Services"},
			{ID: "service10", Label: "🔟 Maintenance & Technical Support"},
			{ID: "service11", Label: "1️⃣1️⃣ Digital Solutions & Consulting"},
			{ID: "service12", Label: "1️⃣2️⃣ Branding & Digital Presence"},
		},
	},
}

var digitalPages = []Page{
	{
		Title: "🚀 NovoNex Digital Works – Page 1/4",
		Services: []Service{
			{ID: "service13", Label: "1️⃣ Digital Marketing Strategy"},
			{ID: "service14", Label: "2️⃣ Social Media Marketing (SMM)"},
			{ID: "service15", Label: "3️⃣ Social Media Advertising"},
		},
	},
	{
		Title: "🚀 NovoNex Digital Works – Page 2/4",
		Services: []Service{
			{ID: "service16", Label: "4️⃣ Content Creation & Design"},
			{ID: "service17", Label: "5️⃣ Search Engine Optimization (SEO)"},
			{ID: "service18", Label: "6️⃣ Search Engine Marketing (SEM)"},
		},
	},
	{
		Title: "🚀 NovoNex Digital Works – Page 3/4",
		Services: []Service{
			{ID: "service19", Label: "7️⃣ Branding & Brand Identity"},
			{ID: "service20", Label: "8️⃣ Website & Funnel Marketing"},
			{ID: "service21", Label: "9️⃣ Email & WhatsApp Marketing"},
		},
	},
	{
		Title: "🚀 NovoNex Digital Works – Page 4/4",
		Services: []Service{
			{ID: "service22", Label: "🔟 Influencer & Video Marketing"},
			{ID: "service23", Label: "1️⃣1️⃣ Analytics & Performance"},
			{ID: "service24", Label: "1️⃣2️⃣ Local & Business Marketing"},
			{ID: "service25", Label: "1️⃣3️⃣ Marketing Automation"},
		},
	},
}

type serviceInfo struct {
	title   string
	bullets []string
	extra   []string
	company session.Company
}

var serviceInfos = map[string]serviceInfo{
	"service1": {
		title:   "1️⃣ Custom Software Development",
		bullets: []string{"Business Management Systems", "Inventory / POS Systems", "Accounting & Billing Systems", "CRM / ERP Systems"},
		company: session.CompanySoftware,
	},
	"service2": {
		title:   "2️⃣ Web Application Development",
		bullets: []string{"Custom Web Applications", "Admin Dashboards", "Booking Systems", "Learning Management Systems (LMS)", "Job Portals / Classified Websites", "SaaS Platforms"},
		extra:   []string{"*Technologies:*", "React, Next.js, Node.js, PHP, Laravel, MySQL, Firebase"},
		company: session.CompanySoftware,
	},
	"service3": {
		title:   "3️⃣ Website Development",
		bullets: []string{"Business Websites", "Corporate Websites", "Portfolio Websites", "Blog & Content Websites", "Landing Pages", "Multi-language Websites"},
		extra:   []string{"✔️ Mobile Friendly", "✔️ Fast Loading", "✔️ SEO Ready"},
		company: session.CompanySoftware,
	},
	"service4": {
		title:   "4️⃣ E-Commerce Solutions",
		bullets: []string{"Online Store Development", "Payment Gateway Integration", "Product & Order Management", "Customer Accounts", "Admin Panel", "Delivery & Invoice Systems"},
		company: session.CompanySoftware,
	},
	"service5": {
		title:   "5️⃣ Mobile Application Development",
		bullets: []string{"Android Applications", "iOS Applications", "Hybrid Apps (React Native / Flutter)", "App UI Design", "API Integration"},
		company: session.CompanySoftware,
	},
	"service6": {
		title:   "6️⃣ UI / UX Design",
		bullets: []string{"Website UI Design", "Mobile App UI Design", "Dashboard UI Design", "User Experience Optimization", "Figma / Adobe XD Designs"},
		company: session.CompanySoftware,
	},
	"service7": {
		title:   "7️⃣ AI & Automation Solutions",
		bullets: []string{"AI-powered Web Apps", "Chatbots", "Image / Content Generation Tools", "Automation Systems", "AI Integration for Businesses"},
		company: session.CompanySoftware,
	},
	"service8": {
		title:   "8️⃣ System Integration & API Development",
		bullets: []string{"Third-party API Integration", "Payment Gateways", "SMS / Email Systems", "Maps & Location Services", "ERP / CRM Integration"},
		company: session.CompanySoftware,
	},
	"service9": {
		title:   "9️⃣ Cloud & Hosting Services",
		bullets: []string{"Domain Registration", "Web Hosting", "Cloud Deployment", "Server Setup & Maintenance", "Backup & Security Management"},
		company: session.CompanySoftware,
	},
	"service10": {
		title:   "🔟 Maintenance & Technical Support",
		bullets: []string{"Software Maintenance", "Bug Fixing", "Feature Updates", "Performance Optimization", "Security Updates"},
		company: session.CompanySoftware,
	},
	"service11": {
		title:   "1️⃣1️⃣ Digital Solutions & Consulting",
		bullets: []string{"IT Consulting", "Business Digital Transformation", "System Planning & Architecture", "Startup Tech Consultation"},
		company: session.CompanySoftware,
	},
	"service12": {
		title:   "1️⃣2️⃣ Branding & Digital Presence",
		bullets: []string{"Logo Design", "Brand Identity", "Website Content Setup", "SEO Optimization", "Social Media Integration"},
		company: session.CompanySoftware,
	},

	"service13": {
		title:   "1️⃣ Digital Marketing Strategy & Consulting",
		bullets: []string{"Business Digital Marketing Planning", "Brand Growth Strategy", "Campaign Planning", "Market & Competitor Analysis", "Marketing Consultation"},
		company: session.CompanyDigital,
	},
	"service14": {
		title:   "2️⃣ Social Media Marketing (SMM)",
		bullets: []string{"Facebook Marketing", "Instagram Marketing", "TikTok Marketing", "LinkedIn Marketing", "YouTube Channel Management"},
		extra:   []string{"✔️ Content Planning", "✔️ Post Designing", "✔️ Page Handling", "✔️ Engagement Growth"},
		company: session.CompanyDigital,
	},
	"service15": {
		title:   "3️⃣ Social Media Advertising (Paid Ads)",
		bullets: []string{"Facebook & Instagram Ads", "TikTok Ads", "Google Display Ads", "Lead Generation Campaigns", "Conversion & Sales Ads", "Retargeting Ads"},
		company: session.CompanyDigital,
	},
	"service16": {
		title:   "4️⃣ Content Creation & Creative Design",
		bullets: []string{"Graphic Design (Posts, Banners, Flyers)", "Video Editing (Reels, Shorts, Ads)", "Motion Graphics", "Brand Visual Design", "AI-based Creative Content"},
		company: session.CompanyDigital,
	},
	"service17": {
		title:   "5️⃣ Search Engine Optimization (SEO)",
		bullets: []string{"On-Page SEO", "Technical SEO", "Keyword Research", "Content Optimization", "Google Ranking Improvement"},
		company: session.CompanyDigital,
	},
	"service18": {
		title:   "6️⃣ Search Engine Marketing (SEM)",
		bullets: []string{"Google Search Ads", "Google Shopping Ads", "Keyword Targeted Campaigns", "ROI-focused Ad Management"},
		company: session.CompanyDigital,
	},
	"service19": {
		title:   "7️⃣ Branding & Brand Identity",
		bullets: []string{"Logo Design", "Brand Guidelines", "Color & Typography System", "Visual Identity Design", "Brand Positioning"},
		company: session.CompanyDigital,
	},
	"service20": {
		title:   "8️⃣ Website & Funnel Marketing",
		bullets: []string{"Landing Page Design", "Sales Funnel Setup", "Website Conversion Optimization", "Lead Capture Forms", "Email Integration"},
		company: session.CompanyDigital,
	},
	"service21": {
		title:   "9️⃣ Email & WhatsApp Marketing",
		bullets: []string{"Email Campaigns", "Newsletter Design", "WhatsApp Bulk Messaging", "Automation Setup", "Customer Follow-up Systems"},
		company: session.CompanyDigital,
	},
	"service22": {
		title:   "🔟 Influencer & Video Marketing",
		bullets: []string{"Influencer Collaborations", "YouTube Video Marketing", "Short-form Video Strategy", "Reels & TikTok Growth Plans"},
		company: session.CompanyDigital,
	},
	"service23": {
		title:   "1️⃣1️⃣ Analytics & Performance Tracking",
		bullets: []string{"Google Analytics Setup", "Meta Pixel Integration", "Campaign Performance Reports", "Audience Behavior Analysis", "Monthly Marketing Reports"},
		company: session.CompanyDigital,
	},
	"service24": {
		title:   "1️⃣2️⃣ Local & Business Marketing",
		bullets: []string{"Google My Business Optimization", "Local SEO", "Map-based Business Promotion", "Review & Reputation Management"},
		company: session.CompanyDigital,
	},
	"service25": {
		title:   "1️⃣3️⃣ Marketing Automation",
		bullets: []string{"CRM Integration", "Auto Lead Response Systems", "Chatbot Setup", "AI Automation for Marketing"},
		company: session.CompanyDigital,
	},
}

var welcomeText = "🤖 *Welcome to NovoNex!*\n\n" +
	"We provide comprehensive technology and digital solutions for your business.\n\n" +
	"*Please select a service category:*\n\n" +
	"1️⃣ *" + softwareName + "*\n" +
	"   - Custom Software Development\n" +
	"   - Web & Mobile Applications\n" +
	"   - System Integration\n\n" +
	"2️⃣ *" + digitalName + "*\n" +
	"   - Digital Marketing\n" +
	"   - Social Media Management\n" +
	"   - Branding & SEO\n\n" +
	"*Click a button below or type 1 or 2 to continue.*"

var contactText = "📞 *Contact Information*\n\n" +
	"*" + softwareName + ":*\n" +
	"📱 Hotline: " + softwareHotline + "\n" +
	"📧 Email: " + companyEmail + "\n\n" +
	"*" + digitalName + ":*\n" +
	"📱 Hotline: " + digitalHotline + "\n" +
	"📧 Email: " + companyEmail

var fallbackServiceText = "*Service Details*\n\n" +
	"Service information not available.\n\n" +
	"📞 *Contact:*\n" +
	softwareName + ": " + softwareHotline + "\n" +
	digitalName + ": " + digitalHotline + "\n" +
	"📧 *Email:* " + companyEmail
