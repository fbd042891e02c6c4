package coach

// Literal JSON schema examples embedded in prompts. The model copies their
// shape; only syntactic validity of the reply is enforced on the way back.

const resumeStructureSchema = `{
  "personal_info": { "name": "string", "email": "string", "phone": "string", "linkedin": "string", "github": "string" },
  "summary": "string",
  "work_experience": [ { "role": "string", "company": "string", "duration": "string", "description": ["string", "..."] } ],
  "internships": [ { "role": "string", "company": "string", "duration": "string", "description": ["string", "..."] } ],
  "education": [ { "institution": "string", "degree": "string", "duration": "string", "description": ["string", "..."] } ],
  "projects": [ { "title": "string", "description": ["string", "..."] } ],
  "certifications": [ { "name": "string", "description": "string" } ]
}`

const skillCategoriesSchema = `{
    "Programming Languages": ["Python", "JavaScript", "Java", "C++", "..."],
    "Frameworks and Libraries": ["TensorFlow", "PyTorch", "React", "Node.js", "Pandas", "..."],
    "Databases": ["MySQL", "PostgreSQL", "MongoDB", "..."],
    "Tools and Platforms": ["Git", "Docker", "AWS", "Jira", "Linux", "..."],
    "Data Science": ["Machine Learning", "NLP", "Data Visualization", "Predictive Modeling", "..."],
    "Soft Skills": ["Leadership", "Teamwork", "Communication", "Problem Solving", "..."]
}`

const linkedinSchema = `{
    "headlines": ["string option 1", "..."],
    "about_section": "string",
    "optimized_experiences": [ { "title": "Role at Company", "description": "string" } ],
    "optimized_projects": [ { "title": "Project Title", "description": "string" } ]
}`

const assessmentQuestionsSchema = `[
  {
    "question_id": "string",
    "question_text": "string",
    "question_type": "single_choice" | "multiple_choice" | "short_answer" | "coding_challenge",
    "options": ["string option 1", "string option 2", "string option 3", "string option 4"],
    "correct_answer_keys": ["string option 1"]
  }
]`

const assessmentEvaluationSchema = `{
  "overall_score": 75,
  "skills_mastered": 3,
  "areas_to_improve": 2,
  "skill_scores": { "Python": 80, "SQL": 60, "Data Analysis": 75 },
  "strengths": ["Demonstrated strong foundational knowledge in Python.", "Understood basic SQL queries."],
  "weaknesses": ["Struggled with complex data manipulation in SQL.", "Limited understanding of advanced data analysis concepts."],
  "recommendations": [
    "Focus on SQL subqueries and window functions for data manipulation.",
    "Practice implementing machine learning algorithms from scratch.",
    "Explore advanced data visualization techniques and tools."
  ]
}`

const resumeAnalysisSchema = `{
  "analysis_date": "September 05, 2025",
  "job_role_context": "string",
  "ai_model": "Google Gemini",
  "overall_resume_score": 68,
  "overall_resume_grade": "Good",
  "ats_optimization_score": 60,
  "professional_profile_analysis": { "title": "Professional Profile Analysis", "summary": "string" },
  "education_analysis": { "title": "Education Analysis", "summary": "string" },
  "experience_analysis": { "title": "Experience Analysis", "summary": "string" },
  "skills_analysis": { "title": "Skills Analysis", "summary": "string" },
  "key_strengths": ["string", "string"],
  "areas_for_improvement": ["string", "string", "string"],
  "overall_assessment": "string"
}`
