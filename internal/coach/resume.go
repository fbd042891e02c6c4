package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
)

// ErrNoUsableOutput is returned when generation succeeded but nothing
// parseable came back, for operations whose contract is to fail rather than
// degrade.
var ErrNoUsableOutput = errors.New("no usable model output")

// StructureResume converts raw resume text into a structured document.
// Skills are deliberately excluded here; CategorizeSkills owns them.
func (e *Engine) StructureResume(ctx context.Context, resumeText string) (map[string]interface{}, error) {
	prompt := fmt.Sprintf(`You are an expert HR Technology engineer specializing in resume data extraction. Your task is to convert the raw text of a resume into a structured, valid JSON object, capturing ALL information with high fidelity.
**Instructions:**
1.  **Use the Base Schema:** For common sections, use the following schema.
2.  **Capture Everything Else:** If you find other sections that do not fit the schema (e.g., "Achievements", "Leadership"), create a new top-level key for them (e.g., "achievements").
3.  **IGNORE THE SKILLS SECTION:** Do not parse the skills section in this step. It will be handled by a different process. Omit the 'skills' key from your output.
**Base Schema:**
%s
**Critical Rules:**
- If a section from the base schema is NOT in the resume, YOU MUST OMIT ITS KEY from the final JSON. Do not create empty sections.
- Your final output must be a single, valid JSON object. Do not include markdown.
--- RESUME TEXT ---
%s
--- END RESUME TEXT ---`, resumeStructureSchema, resumeText)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var structured map[string]interface{}
	if !llm.NormalizeInto(text, &structured) {
		e.logger.Error("resume structuring returned unparseable output")
		return nil, ErrNoUsableOutput
	}
	return structured, nil
}

// CategorizeSkills scans the whole resume text and returns a category to
// skill-list map.
func (e *Engine) CategorizeSkills(ctx context.Context, resumeText string) (map[string][]string, error) {
	prompt := fmt.Sprintf(`You are an expert technical recruiter and data analyst.
Your sole job is to scan the entire resume text provided and identify all skills, both technical and soft.
**Instructions:**
1.  Extract skills from *anywhere* in the text: summaries, project descriptions, a dedicated skills section, etc.
2.  Categorize the skills into the predefined keys in the JSON schema below.
3.  Place each skill only in the most appropriate category.
4.  If a category has no skills, you can omit the key from the output.
**JSON Output Schema:**
%s
**Critical Rules:**
- Your output must be ONLY the valid JSON object described above.
- Do not add any explanation or markdown.
--- RESUME TEXT ---
%s
--- END RESUME TEXT ---`, skillCategoriesSchema, resumeText)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var categories map[string][]string
	if !llm.NormalizeInto(text, &categories) {
		e.logger.Error("skill categorization returned unparseable output")
		return nil, ErrNoUsableOutput
	}
	return categories, nil
}

// OptimizeResume rewrites the resume document, either one targeted section
// or the whole document. On total generation failure or unusable output the
// INPUT IS RETURNED UNCHANGED: a stale resume beats a broken editor session.
func (e *Engine) OptimizeResume(ctx context.Context, resume map[string]interface{}, userRequest, jobDescription string) map[string]interface{} {
	section, _ := parseOptimizationInput(userRequest)

	keys := make([]string, 0, len(resume))
	for k := range resume {
		keys = append(keys, k)
	}

	jobContext := ""
	if strings.TrimSpace(jobDescription) != "" {
		jobContext = fmt.Sprintf(`**Job Description Context:**
Below is the job description for which the resume is being optimized. Incorporate keywords, desired skills, and align the achievements to the requirements of this role.
%s
`, fencedBlock(jobDescription))
	}

	baseContext := fmt.Sprintf(`CONTEXT: You are an elite career strategist and executive resume writer. Your task is to transform a resume from a passive list of duties into a compelling narrative of achievements that will impress top-tier recruiters.
**Your Transformation Checklist (Apply to every relevant bullet point):**
1.  **Lead with a Powerful Action Verb:** Replace weak verbs with strong, specific verbs (e.g., "Engineered," "Architected," "Spearheaded").
2.  **Quantify Metrics Relentlessly:** Add concrete numbers to show scale and achievement.
3.  **Showcase Impact and Scope:** If a number isn't available, describe the tangible impact or business outcome.
4.  **Integrate Technical Skills Naturally:** Weave technologies into the story of the achievement.
5.  **Ensure Brevity and Clarity:** Remove filler words. Each bullet point should be a single, powerful line.

%s

**Critical Rules:**
- **Do not modify, add, or delete any titles, names, companies, institutions, or skill names.** This is a strict rule. Only rewrite descriptions.
- DO NOT invent facts or skills.
- DO NOT invent specific numbers.
- Preserve the original data structure.
- Do not modify personal information (name, email, phone).
- Your final output must be only the requested, valid JSON. Do not include markdown.`, jobContext)

	var prompt string
	var mapped string
	if section != "" {
		mapped = bestSectionKey(section, keys)
		if mapped == "" {
			return resume
		}
		sectionJSON, _ := json.MarshalIndent(resume[mapped], "", "  ")
		prompt = fmt.Sprintf(`%s
TASK: Apply your full transformation checklist to optimize ONLY the following JSON section, named "%s".
--- INPUT JSON SECTION ---
%s
--- END INPUT JSON ---`, baseContext, mapped, sectionJSON)
	} else {
		resumeJSON, _ := json.MarshalIndent(resume, "", "  ")
		prompt = fmt.Sprintf(`%s
TASK: Apply your full transformation checklist to optimize all sections of the following resume JSON.
--- FULL INPUT JSON ---
%s
--- END INPUT JSON ---`, baseContext, resumeJSON)
	}

	text, err := e.generate(ctx, prompt)
	if err != nil {
		e.logger.Warn("resume optimization degraded to input", map[string]interface{}{"error": err.Error()})
		return resume
	}

	if mapped != "" {
		var sectionData interface{}
		raw, ok := llm.Normalize(text)
		if !ok {
			e.logger.Warn("resume section optimization returned unparseable output")
			return resume
		}
		sectionData = raw
		resume[mapped] = sectionData
		return resume
	}

	var optimized map[string]interface{}
	if !llm.NormalizeInto(text, &optimized) {
		e.logger.Warn("resume optimization returned unparseable output")
		return resume
	}

	// Only keys already present are replaced; the model cannot grow the
	// document.
	for key, value := range optimized {
		if _, exists := resume[key]; exists {
			resume[key] = value
		}
	}
	return resume
}

// OptimizeForLinkedIn generates LinkedIn-ready content (headlines, about
// section, rewritten experiences and projects) from the resume document.
func (e *Engine) OptimizeForLinkedIn(ctx context.Context, resume map[string]interface{}, userRequest, jobDescription string) (map[string]interface{}, error) {
	resumeContext := buildLinkedInContext(resume)
	section, _ := parseOptimizationInput(userRequest)

	jobContext := ""
	if strings.TrimSpace(jobDescription) != "" {
		jobContext = fmt.Sprintf(`**Job Description Context:**
Below is the job description for which the LinkedIn profile is being optimized. Align the content with the keywords, requirements, and tone of this role.
%s
`, fencedBlock(jobDescription))
	}

	baseContext := fmt.Sprintf(`You are an expert LinkedIn profile strategist and personal branding coach.
Your task is to generate compelling, optimized text for a user's LinkedIn profile based on the provided resume content.
**Instructions:**
1.  **Headlines:** Create 2-3 powerful, keyword-rich headline options.
2.  **About (Summary):** Write a compelling, first-person "About" section.
3.  **Experiences:** For EACH job/internship in the context, rewrite the bullet points to be concise and results-oriented.
4.  **Projects:** For EACH project in the context, rewrite its description to be engaging for a LinkedIn audience.

%s
**JSON Output Schema:**
%s

**Critical Rules:**
- Generate content ONLY from the provided resume context.
- Keep the tone professional but approachable.
- Your final output must be ONLY the valid JSON object that matches the requested task.`, jobContext, linkedinSchema)

	task := "perform a full optimization of a LinkedIn profile"
	if section != "" {
		task = fmt.Sprintf("optimize ONLY the '%s' portion of a LinkedIn profile", section)
	}
	prompt := fmt.Sprintf(`%s
TASK: Based on the resume context, %s.
--- RESUME CONTEXT ---
%s
--- END RESUME CONTEXT ---`, baseContext, task, resumeContext)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var content map[string]interface{}
	if !llm.NormalizeInto(text, &content) {
		e.logger.Error("linkedin optimization returned unparseable output")
		return nil, ErrNoUsableOutput
	}
	return content, nil
}

// FullResumeAnalysis produces a scored analysis report. When a job
// description is given, a small auxiliary call infers the target role
// first; the analysis date is always set server-side.
func (e *Engine) FullResumeAnalysis(ctx context.Context, resumeText, jobDescription string) (map[string]interface{}, error) {
	jobContext := ""
	jobRoleHint := "General Candidate"

	if strings.TrimSpace(jobDescription) != "" {
		jobContext = fmt.Sprintf(`The user has provided a job description. Analyze the resume specifically against this job description
to provide highly tailored feedback, especially for ATS optimization, strengths, and areas for improvement.
Infer the primary 'Job Role' from this description.

**Job Description:**
%s
`, fencedBlock(jobDescription))

		rolePrompt := fmt.Sprintf("Extract the primary job role from the following job description. Respond with only the job role text (e.g., 'Software Engineer', 'Data Scientist', 'Frontend Developer').\n\nJob Description: %s", jobDescription)
		if roleText, err := e.generate(ctx, rolePrompt); err == nil {
			inferred := strings.TrimSpace(roleText)
			if inferred != "" && len(strings.Fields(inferred)) < 5 {
				jobRoleHint = inferred
			}
		} else {
			e.logger.Warn("could not infer job role from job description, using default")
		}
	}

	prompt := fmt.Sprintf(`You are an expert HR consultant and AI resume analyst. Your task is to provide a comprehensive analysis of the given resume.
Generate a detailed report covering overall assessment, specific section analyses, key strengths, areas for improvement,
and a dedicated ATS optimization score, all in a single JSON object.

**Instructions:**
1.  **Analysis Date:** Current date (e.g., "September 05, 2025").
2.  **Job Role Context:** Infer a primary job role from the provided job description (if any) or from the resume itself. Default to "General Candidate" if unclear.
3.  **AI Model:** "Google Gemini"
4.  **Overall Resume Score:** A percentage (0-100) reflecting general quality, clarity, and effectiveness.
5.  **Overall Resume Grade:** A concise word (e.g., "Excellent", "Good", "Fair", "Needs Improvement") corresponding to the score.
6.  **ATS Optimization Score:** A percentage (0-100) reflecting compatibility with Applicant Tracking Systems, especially considering the job description.
7.  **Section-wise Analysis:** Provide a 'title' and 'summary' for professional_profile_analysis, education_analysis, experience_analysis and skills_analysis.
8.  **Key Strengths:** 2-3 bullet points highlighting positive aspects.
9.  **Areas for Improvement:** 3-5 bullet points covering general resume improvements AND specific ATS issues (e.g., keyword gaps, formatting problems).
10. **Overall Assessment:** A concluding paragraph summarizing the findings and potential for improvement.

%s

**Resume Text:**
%s

**JSON Output Schema:**
%s
**Critical Rules:**
- Your final output MUST be a single, valid JSON object following the schema.
- DO NOT include any introductory or concluding text outside the JSON.
- Ensure all scores are integers (0-100).
- If no job description is provided, make reasonable general assumptions for the 'Job Role Context' and ATS analysis.
- For section summaries, be direct and actionable.`, jobContext, fencedBlock(resumeText), resumeAnalysisSchema)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis map[string]interface{}
	if !llm.NormalizeInto(text, &analysis) {
		e.logger.Error("resume analysis returned unparseable output")
		return nil, ErrNoUsableOutput
	}

	if jobRoleHint != "General Candidate" {
		analysis["job_role_context"] = jobRoleHint
	}
	// The model is unreliable about dates; always stamp the real one.
	analysis["analysis_date"] = time.Now().Format("January 02, 2006")

	return analysis, nil
}

// buildLinkedInContext flattens the resume document into prompt-ready text,
// keeping experiences, projects, skills and any custom sections.
func buildLinkedInContext(resume map[string]interface{}) string {
	var parts []string

	if summary, ok := resume["summary"].(string); ok {
		parts = append(parts, fmt.Sprintf("Summary:\n%s", summary))
	}

	var experiences []interface{}
	if work, ok := resume["work_experience"].([]interface{}); ok {
		experiences = append(experiences, work...)
	}
	if internships, ok := resume["internships"].([]interface{}); ok {
		experiences = append(experiences, internships...)
	}
	if len(experiences) > 0 {
		parts = append(parts, "\nProfessional Experience & Internships:")
		for _, exp := range experiences {
			job, ok := exp.(map[string]interface{})
			if !ok {
				continue
			}
			desc := stringifyListContent(job["description"])
			parts = append(parts, fmt.Sprintf("- %v at %v: %s", job["role"], job["company"], strings.ReplaceAll(desc, "\n", " ")))
		}
	}

	if projects, ok := resume["projects"].([]interface{}); ok {
		parts = append(parts, "\nProjects:")
		for _, p := range projects {
			project, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			desc := stringifyListContent(project["description"])
			parts = append(parts, fmt.Sprintf("- %v: %s", project["title"], strings.ReplaceAll(desc, "\n", " ")))
		}
	}

	if skills, ok := resume["skills"].(map[string]interface{}); ok {
		var skillParts []string
		for cat, list := range skills {
			skillParts = append(skillParts, fmt.Sprintf("%s: %s", cat, strings.ReplaceAll(stringifyListContent(list), "\n", ", ")))
		}
		parts = append(parts, fmt.Sprintf("\nSkills: %s", strings.Join(skillParts, ", ")))
	}

	known := map[string]bool{
		"personal_info": true, "summary": true, "work_experience": true,
		"internships": true, "projects": true, "skills": true,
		"education": true, "certifications": true, "resume_metadata": true,
		"raw_text": true,
	}
	for key, value := range resume {
		if known[key] {
			continue
		}
		switch v := value.(type) {
		case string:
			parts = append(parts, fmt.Sprintf("\n%s:\n%s", titleCase(key), v))
		case []interface{}:
			parts = append(parts, fmt.Sprintf("\n%s:\n%s", titleCase(key), stringifyListContent(v)))
		}
	}

	return strings.Join(parts, "\n")
}

// fencedBlock wraps text in a markdown code fence for prompt embedding.
func fencedBlock(text string) string {
	return "```\n" + text + "\n```"
}
