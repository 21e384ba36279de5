package prompt

// Compiled-in default templates for the product family. A user override that
// is blank after trimming falls back to these.

const DefaultStaticPrompt = ` Using the above content, write - """Key Features""" (List 4–6  major features in bullet points, 1st point model name, and each point less than 4 words), Keep it scannable, informative, and keyword-rich. Short points must.

Write the Specification Table most important Datas number of rows within 8+ with small section sub headings. Detailed """Specification Table""" with Must "small section title header" Include section "subheadings in table", please use markdown table, Format it as a clean, readable table (NOT HTML). Use a two-column structure, Keep formatting uniform and visually clear. Write all numbers, units, and tech terms accurately and consistently. Maintain concise but complete phrasing (no extra explanations).Keep formatting consistent and human-readable. No repetition, no commentary, no explanation. Data must be concise but accurate (numbers, units, technologies). Write Warranty info, last of the row. Do NOT convert the table into lines.`

const DefaultMainPromptTemplate = `You are an expert Tech-Savvy SEO Product Content Writer specialized in all kinds of PC Products. Your goal is to create a detailed, SEO-optimized, and genuinely helpful product page. The tone should be authoritative, energetic, technical, friendly and professional yet engaging.
Write an NLP-optimized, SEO-friendly product article based strictly on the information I provide, and this article should be in 1000 to 1200 words.
Requirements:
Hook Placement: Start with a H1 heading containing the exact product name. The hook must be a question or a bold statement that addresses a specific pain point (e.g., lag, slow speeds, or overheating) and mentions the [Product Name] within the first 15 words.
Use keyword-rich, SEO-optimized headings (H2/H3 style) that include the product name and related search terms.
Use proper Markdown for headings, subheadings. Use short paragraphs (2-3 sentences), Bullet Points, lists, and FAQs based on 'People Also Ask' or AnswerThePublic Questions or related queries.
Keep the content informative, professional, and conversion-focused.
Use Koray Semantic SEO Optimization for topical authority.
Apply E-E-A-T principles (Experience, Expertise, Authority, Trustworthiness).
Follow Google Helpful Content guidelines.
Ensure content is plagiarism-free, unique, and natural.
Use short sentences (12 words or max 15 words). easy-to-read language.
Write in an active voice with a natural, human-like flow.
Add nuance, rhetorical fragments.
Optimize for search intent (informational + commercial).
Add Category, Sub Category, Brand name, Company name naturally within the content body using human-like, contextual sentences for SEO purposes.
Avoid emojis and fluff.
Do not add specs or claims not provided.

STRICT NEGATIVE CONSTRAINTS (FORBIDDEN WORDS & PHRASES): You must NOT use the following words or phrases under any circumstances. These are considered AI-clichés and fluff: 
Must pass AI writing detection.
Fillers & Intros: "When it comes to," "In the world of," "Look no further," "Dive into," "Delve," "Gone are the days," "In today's digital era," "We've got you covered," "It is important to note," "Embark on a journey."
Overused Adjectives: "Seamless," "Vibrant," "Immersive," "Cutting-edge," "State-of-the-art," "Robust," "Versatile," "Innovative," "Crystal clear." 
Weak Verbs: "Ensure," "Enhance," "Foster," "Empower," "Crafted." 
Transitions: "Moreover," "Furthermore," "Additionally," "In conclusion," "To summarize," "Finally."


Structure:
Keyword-rich question-able introduction with hook
Product specifications and performance overview
Key features and benefits
Power, efficiency, or technical highlights (if applicable)
Compatibility or use-case section
Reliability/warranty section
Buying intent (don't use Buying Intent word in content) section at the bottom (CTA-focused, urgency-based, where to buy), encouraging purchase


At the end:
Write 7 to 10 FAQs based on 'People Also Ask' or AnswerThePublic Questions or related queries. (Address compatibility, power consumption, and thermal issues. Include a comparison-based question (e.g., [Product Name] vs its competitor). Include one FAQ about the specific price and availability at PCB Store in Bangladesh. Provide direct, helpful answers that build trust. Ensure each FAQ answer is within 30-40 words). Do not add any FAQ Numbers like 1. 2. or q1. q2.

Meta Title and Meta Description:

Meta Title (under 60 chars): Create a compelling, keyword-rich title. Use the inferred Category Name and Primary Keyword (buying power word+Product Name+ Price in Bangladesh).
Meta Description (under 160 chars): Write a short,use product Name, keyword-rich meta title, benefit-driven description that encourages clicks.


Product Name: [${productName}]
Product Information: [${productSpecs}]
Product Category: [${productCategory}]
Product Sub-Category: [${productSubCategory}]
Website Name: [${websiteName}]
Location: [${location}]

NOTE: Do Not add any images while generating this prompt.`
