package frameworks

import (
	"fmt"
	"strings"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned spring stack versions.
const (
	springBootVersion = "3.3.3"
	javaVersion       = "21"
)

// Spring returns the blueprint for Spring Boot services.
func Spring() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "spring",
		Aliases:     []string{"spring", "spring-boot", "springboot"},
		Description: "Spring Boot HTTP service",
		Runtime:     "jvm",
		Schema: scaffold.Schema{
			{Key: "buildTool", Kind: scaffold.KindString, Default: "maven", Enum: []string{"maven", "gradle"}, Doc: "Build tool"},
			{Key: "database", Kind: scaffold.KindString, Default: "none", Enum: []string{"none", "postgres", "mysql"}, Doc: "Database integration via Spring Data JPA"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
		},
		Features: []scaffold.Feature{
			{Name: "maven", When: whenString("buildTool", "maven"), Files: springMaven},
			{Name: "gradle", When: whenString("buildTool", "gradle"), Files: springGradle},
			{Name: "source", Files: springSource},
			{Name: "database", When: whenNotString("database", "none"), Files: springDatabase},
			{Name: "docker", When: whenBool("docker"), Files: springDockerfile},
		},
	}
}

// springClass converts the project name to a Java class name prefix.
func springClass(project string) string {
	var b strings.Builder
	upper := true
	for _, r := range project {
		if r == '-' || r == '_' || r == '.' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "App"
	}
	return b.String()
}

// springArtifact converts the project name to a maven artifact id.
func springArtifact(project string) string {
	return strings.ToLower(strings.NewReplacer("_", "-", ".", "-").Replace(project))
}

func springMaven(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options

	deps := `        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
        </dependency>
`
	switch o.String("database") {
	case "postgres":
		deps += `        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-data-jpa</artifactId>
        </dependency>
        <dependency>
            <groupId>org.postgresql</groupId>
            <artifactId>postgresql</artifactId>
            <scope>runtime</scope>
        </dependency>
`
	case "mysql":
		deps += `        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-data-jpa</artifactId>
        </dependency>
        <dependency>
            <groupId>com.mysql</groupId>
            <artifactId>mysql-connector-j</artifactId>
            <scope>runtime</scope>
        </dependency>
`
	}

	pom := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>

    <parent>
        <groupId>org.springframework.boot</groupId>
        <artifactId>spring-boot-starter-parent</artifactId>
        <version>%s</version>
        <relativePath/>
    </parent>

    <groupId>com.example</groupId>
    <artifactId>%s</artifactId>
    <version>0.1.0</version>

    <properties>
        <java.version>%s</java.version>
    </properties>

    <dependencies>
%s    </dependencies>

    <build>
        <plugins>
            <plugin>
                <groupId>org.springframework.boot</groupId>
                <artifactId>spring-boot-maven-plugin</artifactId>
            </plugin>
        </plugins>
    </build>
</project>
`, springBootVersion, springArtifact(ctx.Project), javaVersion, deps)

	return []scaffold.FileNode{
		file("pom.xml", pom),
	}
}

func springGradle(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options

	deps := `    implementation 'org.springframework.boot:spring-boot-starter-web'
`
	switch o.String("database") {
	case "postgres":
		deps += `    implementation 'org.springframework.boot:spring-boot-starter-data-jpa'
    runtimeOnly 'org.postgresql:postgresql'
`
	case "mysql":
		deps += `    implementation 'org.springframework.boot:spring-boot-starter-data-jpa'
    runtimeOnly 'com.mysql:mysql-connector-j'
`
	}

	build := fmt.Sprintf(`plugins {
    id 'java'
    id 'org.springframework.boot' version '%s'
    id 'io.spring.dependency-management' version '1.1.6'
}

group = 'com.example'
version = '0.1.0'

java {
    toolchain {
        languageVersion = JavaLanguageVersion.of(%s)
    }
}

repositories {
    mavenCentral()
}

dependencies {
%s}
`, springBootVersion, javaVersion, deps)

	return []scaffold.FileNode{
		file("build.gradle", build),
		file("settings.gradle", fmt.Sprintf("rootProject.name = '%s'\n", springArtifact(ctx.Project))),
	}
}

func springSource(ctx scaffold.Context) []scaffold.FileNode {
	class := springClass(ctx.Project)
	srcDir := "src/main/java/com/example/app"

	application := fmt.Sprintf(`package com.example.app;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class %sApplication {

    public static void main(String[] args) {
        SpringApplication.run(%sApplication.class, args);
    }
}
`, class, class)

	controller := fmt.Sprintf(`package com.example.app;

import java.util.Map;

import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.RestController;

@RestController
public class HealthController {

    @GetMapping("/health")
    public Map<String, String> health() {
        return Map.of("status", "ok", "service", "%s");
    }
}
`, ctx.Project)

	return []scaffold.FileNode{
		file(srcDir+"/"+springClass(ctx.Project)+"Application.java", application),
		file(srcDir+"/HealthController.java", controller),
		file("src/main/resources/application.properties", springProperties(ctx.Options)),
		file(".gitignore", `target/
build/
.gradle/
*.log
`),
		file("README.md", readme(ctx.Project, "Spring Boot", springRunCmd(ctx.Options))),
	}
}

func springRunCmd(o scaffold.ResolvedOptions) string {
	if o.String("buildTool") == "gradle" {
		return "./gradlew bootRun"
	}
	return "./mvnw spring-boot:run"
}

func springProperties(o scaffold.ResolvedOptions) string {
	props := "server.port=8080\n"
	switch o.String("database") {
	case "postgres":
		props += `spring.datasource.url=jdbc:postgresql://localhost:5432/app
spring.jpa.hibernate.ddl-auto=update
`
	case "mysql":
		props += `spring.datasource.url=jdbc:mysql://localhost:3306/app
spring.jpa.hibernate.ddl-auto=update
`
	}
	return props
}

func springDatabase(ctx scaffold.Context) []scaffold.FileNode {
	var service string
	switch ctx.Options.String("database") {
	case "postgres":
		service = `  db:
    image: postgres:16-alpine
    environment:
      POSTGRES_PASSWORD: postgres
    ports:
      - "5432:5432"
`
	case "mysql":
		service = `  db:
    image: mysql:8
    environment:
      MYSQL_ALLOW_EMPTY_PASSWORD: "yes"
    ports:
      - "3306:3306"
`
	}

	return []scaffold.FileNode{
		file("docker-compose.yml", "services:\n"+service),
	}
}

func springDockerfile(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("Dockerfile", `FROM eclipse-temurin:21-jdk AS build
WORKDIR /app
COPY . .
RUN ./mvnw -q package -DskipTests

FROM eclipse-temurin:21-jre
WORKDIR /app
COPY --from=build /app/target/*.jar app.jar
EXPOSE 8080
CMD ["java", "-jar", "app.jar"]
`),
	}
}
